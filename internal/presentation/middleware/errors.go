package middleware

import "errors"

var (
	errMissingToken    = errors.New("missing Authorization header")
	errMalformedHeader = errors.New("invalid authorization header format")
	errInvalidToken    = errors.New("invalid or expired token")
)
