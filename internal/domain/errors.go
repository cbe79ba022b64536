// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input or a domain entity fails validation.
	// This is usually wrapped in a ValidationError carrying the client-facing message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthenticated is returned when a request carries no usable identity.
	// Missing headers, bad signatures, expired tokens and unknown accounts all
	// collapse into this error so callers cannot tell them apart.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError describes the first constraint an input violated.
// Its Error() text is safe to return to clients.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field. When field is
// empty the message is used as-is.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
