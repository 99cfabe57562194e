package errs

import (
	"errors"
	"fmt"
)

// ErrBusinessRuleViolated is the sentinel for domain rule violations:
// structurally valid input that the business rules reject, such as a
// product that does not belong to the selected restaurant or a postal
// code outside every delivery zone.
var ErrBusinessRuleViolated = errors.New("business rule violated")

// BusinessRuleViolationError carries the human-readable rule that was broken.
type BusinessRuleViolationError struct {
	Rule  string
	Cause error
}

// NewBusinessRuleViolationError creates a BusinessRuleViolationError without a cause.
func NewBusinessRuleViolationError(rule string) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Rule: rule}
}

// NewBusinessRuleViolationErrorWithCause creates a BusinessRuleViolationError
// wrapping the underlying cause.
func NewBusinessRuleViolationErrorWithCause(rule string, cause error) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Rule: rule, Cause: cause}
}

func (e *BusinessRuleViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrBusinessRuleViolated, sanitize(e.Rule), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBusinessRuleViolated, sanitize(e.Rule))
}

func (e *BusinessRuleViolationError) Unwrap() error {
	return ErrBusinessRuleViolated
}
