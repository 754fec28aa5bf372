package models

import (
	"errors"
	"fmt"
)

// Domain error kinds. Services return these (possibly wrapped); the API layer
// maps them to HTTP status codes with errors.Is. Anything that does not match
// a kind below is treated as a transport failure.
var (
	// ErrInvalidCredentials covers unknown email or wrong password on signin.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConfirmationRequired is returned when an account exists but has not
	// confirmed its email yet. Distinct from ErrInvalidCredentials so callers
	// can tell the user what to do instead of showing a generic failure.
	ErrConfirmationRequired = errors.New("account confirmation required")

	// ErrUnauthenticated means the caller has no valid session.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the caller is authenticated but lacks the role or
	// ownership the operation requires. Never downgraded to a no-op.
	ErrForbidden = errors.New("permission denied")

	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means a unique constraint was violated on insert.
	ErrDuplicate = errors.New("record already exists")

	// ErrInvalidStatus means the requested moderation state is not a legal
	// transition target.
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError reports one or more field-level problems with a request
// payload, caught before any mutation is attempted.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}
