// Package errs provides standardized error types for the order management
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error type per failure class in the domain:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of range
//   - BusinessRuleViolationError: structurally valid input breaking a domain rule
//   - InvalidTransitionError: an illegal order status change
//   - ForbiddenError: an authenticated actor lacking access to a resource
//   - UnauthorizedError: no authenticated actor at all
//   - ConflictError: a uniqueness violation
//   - VersionConflictError: a lost optimistic-lock race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter maps these kinds to transport status codes; nothing in
// the core catches and suppresses them.
package errs
