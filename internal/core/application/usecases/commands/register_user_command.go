package commands

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrRegisterUserCommandIsNotConstructed is returned when the command was
// not created through NewRegisterUserCommand.
var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const minPasswordLength = 8

// RegisterUserCommand represents a request to create a login account.
// Only CUSTOMER and RESTAURANT accounts can be self-registered; ADMIN
// accounts are provisioned out of band.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	email        string
	password     string
	role         actor.Role
	consumerID   *kernel.UUID
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user account.
// The password travels in plain text only inside this command; the handler
// hashes it before anything is persisted.
func NewRegisterUserCommand(userID kernel.UUID, email, password string, role actor.Role,
	consumerID, restaurantID *kernel.UUID) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
		cmd.setLinks(consumerID, restaurantID),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier the new account will carry.
func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }

// Email returns the account's unique email address.
func (c RegisterUserCommand) Email() string { return c.email }

// Password returns the plain-text password to be hashed.
func (c RegisterUserCommand) Password() string { return c.password }

// Role returns the requested account role.
func (c RegisterUserCommand) Role() actor.Role { return c.role }

// ConsumerID returns the consumer record to link, or nil.
func (c RegisterUserCommand) ConsumerID() *kernel.UUID {
	if c.consumerID == nil {
		return nil
	}
	id := *c.consumerID
	return &id
}

// RestaurantID returns the restaurant to link, or nil.
func (c RegisterUserCommand) RestaurantID() *kernel.UUID {
	if c.restaurantID == nil {
		return nil
	}
	id := *c.restaurantID
	return &id
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", minPasswordLength))
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == actor.RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			errors.New("ADMIN accounts cannot be self-registered"))
	}

	c.role = role
	return nil
}

func (c *RegisterUserCommand) setLinks(consumerID, restaurantID *kernel.UUID) error {
	if consumerID != nil {
		if err := consumerID.Validate(); err != nil {
			return err
		}
		id := *consumerID
		c.consumerID = &id
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return err
		}
		id := *restaurantID
		c.restaurantID = &id
	}
	return nil
}
