package respond

import (
	"regexp"
)

var (
	// bearer tokens and bare JWTs
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/=-]+`)
	jwtPattern    = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)

	// password inside a URL-style DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// password=... in a keyword/value DSN
	kvPasswordPattern = regexp.MustCompile(`(?i)password=\S+`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	msg = jwtPattern.ReplaceAllString(msg, "****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "password=****")
	return msg
}
