package entity

import (
	"fmt"
	"net"
	"net/url"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

// ValidateImageURL checks an image reference supplied by a client.
// It must be an absolute http(s) URL with a host that is not a literal
// private or loopback address. Host names are not resolved.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "image", Message: "Image must not be empty when provided."}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "image",
			Message: fmt.Sprintf("Image must not exceed %d characters.", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "image", Message: "Image must be a valid URL."}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "image", Message: "Image must use http or https scheme."}
	}
	if parsedURL.Host == "" {
		return &ValidationError{Field: "image", Message: "Image must have a valid host."}
	}

	host := parsedURL.Hostname()
	if host == "localhost" {
		return &ValidationError{Field: "image", Message: "Image cannot point to private network."}
	}
	if ip := net.ParseIP(host); ip != nil && isPrivateIP(ip) {
		return &ValidationError{Field: "image", Message: "Image cannot point to private network."}
	}
	return nil
}

// isPrivateIP checks if an IP address is in a private or restricted range:
// loopback, link-local (including cloud metadata) and RFC 1918 networks.
func isPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() {
		return true
	}

	privateIPv4Ranges := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"169.254.0.0/16",
	}
	for _, cidr := range privateIPv4Ranges {
		_, subnet, _ := net.ParseCIDR(cidr)
		if subnet.Contains(ip) {
			return true
		}
	}
	return false
}
