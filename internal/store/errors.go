package store

import (
	"errors"
	"fmt"
)

// Error categories shared by every store implementation. Callers match on
// these with errors.Is; the specific errors below wrap them.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a write would break a uniqueness rule.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. The wrapped error names the failing field.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrMissingScope is returned when a task query arrives without an owner scope.
	ErrMissingScope = errors.New("task query is not scoped to an owner")

	// ErrTransactionFailed is returned when a transaction cannot be opened or committed.
	ErrTransactionFailed = errors.New("transaction failed")
)

var (
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
	ErrEmailExists  = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError reports whether err is any kind of not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of duplicate error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
