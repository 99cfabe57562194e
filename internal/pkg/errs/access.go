package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrForbidden is the sentinel for authenticated actors that are not
	// authorized for a resource.
	ErrForbidden = errors.New("access denied")

	// ErrUnauthorized is the sentinel for requests with no authenticated
	// actor at all. It is distinct from ErrForbidden, which presumes a
	// valid actor.
	ErrUnauthorized = errors.New("authentication required")
)

// ForbiddenError indicates that the current actor may not access the
// named resource.
type ForbiddenError struct {
	Resource string
	Cause    error
}

// NewForbiddenError creates a ForbiddenError for the given resource.
func NewForbiddenError(resource string) *ForbiddenError {
	return &ForbiddenError{Resource: resource}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping the
// underlying cause.
func NewForbiddenErrorWithCause(resource string, cause error) *ForbiddenError {
	return &ForbiddenError{Resource: resource, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrForbidden, sanitize(e.Resource), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, sanitize(e.Resource))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// UnauthorizedError indicates that no valid authenticated actor exists.
type UnauthorizedError struct {
	Cause error
}

// NewUnauthorizedError creates an UnauthorizedError without a cause.
func NewUnauthorizedError() *UnauthorizedError {
	return &UnauthorizedError{}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping the
// underlying cause, typically a token parsing failure.
func NewUnauthorizedErrorWithCause(cause error) *UnauthorizedError {
	return &UnauthorizedError{Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrUnauthorized, e.Cause)
	}
	return ErrUnauthorized.Error()
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
