package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict is the sentinel for uniqueness violations such as a
	// duplicate consumer email or restaurant name.
	ErrConflict = errors.New("duplicate value")

	// ErrVersionConflict is the sentinel for lost optimistic-lock races.
	// The losing writer must re-read current state and re-validate before
	// retrying; it must never blindly overwrite.
	ErrVersionConflict = errors.New("concurrent update conflict")
)

// ConflictError indicates that a unique field already holds the given value.
type ConflictError struct {
	ParamName string
	Value     string
	Cause     error
}

// NewConflictError creates a ConflictError for the given field and value.
func NewConflictError(paramName, value string) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value}
}

// NewConflictErrorWithCause creates a ConflictError wrapping the underlying
// cause, typically a database unique-constraint error.
func NewConflictErrorWithCause(paramName, value string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %q (cause: %s)", ErrConflict, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s %q", ErrConflict, e.ParamName, sanitize(e.Value))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// VersionConflictError indicates that another writer updated the same
// aggregate between read and write.
type VersionConflictError struct {
	ParamName string
	ID        any
}

// NewVersionConflictError creates a VersionConflictError for the aggregate
// identified by paramName and id.
func NewVersionConflictError(paramName string, id any) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id}
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s: param is: %s, ID is: %s", ErrVersionConflict, e.ParamName, e.ID)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}
