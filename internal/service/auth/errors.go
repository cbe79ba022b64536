package auth

import "errors"

// Token verification failures. The identity resolver collapses all of them
// into one unauthenticated response.
var (
	ErrMissingToken     = errors.New("authentication token is missing")
	ErrMalformedHeader  = errors.New("malformed authorization header")
	ErrInvalidToken     = errors.New("invalid authentication token")
	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
)

// ErrPasswordMismatch is returned when a plaintext password does not match
// the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")
