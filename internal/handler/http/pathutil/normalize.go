package pathutil

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NormalizePath replaces identifier segments with ":id" so unmatched paths
// don't explode metric label cardinality.
//
//	NormalizePath("/articles/6f1c...e2")   // "/articles/:id"
//	NormalizePath("/testvalues/42/")       // "/testvalues/:id"
//	NormalizePath("/posts/6f1c...e2/pin")  // "/posts/:id/pin"
//	NormalizePath("/health?verbose=1")     // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	segments := strings.Split(path, "/")
	for i, s := range segments {
		if isID(s) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isID(s string) bool {
	if s == "" {
		return false
	}
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return true
	}
	return uuid.Validate(s) == nil
}
