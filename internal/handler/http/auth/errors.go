package auth

import "errors"

var errMissingToken = errors.New("missing bearer token")
