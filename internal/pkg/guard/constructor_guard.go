// Package guard provides a defensive pattern that ensures value objects,
// commands, and queries are only created through their designated
// constructor functions. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable at validation time.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value reports the object as not constructed.
//
// Example:
//
//	type RegisterConsumerCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRegisterConsumerCommand(name string) (RegisterConsumerCommand, error) {
//	    ...
//	    return RegisterConsumerCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RegisterConsumerCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterConsumerCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
