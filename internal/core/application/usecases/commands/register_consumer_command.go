package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

// ErrRegisterConsumerCommandIsNotConstructed is returned when the command
// was not created through NewRegisterConsumerCommand.
var ErrRegisterConsumerCommandIsNotConstructed = errors.New(
	"RegisterConsumerCommand must be created via NewRegisterConsumerCommand constructor",
)

// RegisterConsumerCommand represents a request to register a new consumer
// profile. Registration is open: no authenticated actor is required.
// Field-level validation lives in the consumer aggregate; the command only
// guards construction and the identifier.
type RegisterConsumerCommand struct { //nolint:recvcheck //using for validation
	consumerID kernel.UUID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewRegisterConsumerCommand creates a command to register a consumer.
func NewRegisterConsumerCommand(consumerID kernel.UUID,
	name, email, phone, address string) (RegisterConsumerCommand, error) {
	cmd := RegisterConsumerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setConsumerID(consumerID); err != nil {
		return RegisterConsumerCommand{}, err
	}

	cmd.name = name
	cmd.email = email
	cmd.phone = phone
	cmd.address = address

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterConsumerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterConsumerCommandIsNotConstructed)
}

// ConsumerID returns the identifier the new consumer will carry.
func (c RegisterConsumerCommand) ConsumerID() kernel.UUID { return c.consumerID }

// Name returns the consumer's display name.
func (c RegisterConsumerCommand) Name() string { return c.name }

// Email returns the consumer's unique email address.
func (c RegisterConsumerCommand) Email() string { return c.email }

// Phone returns the consumer's contact phone, possibly empty.
func (c RegisterConsumerCommand) Phone() string { return c.phone }

// Address returns the consumer's delivery address.
func (c RegisterConsumerCommand) Address() string { return c.address }

func (c *RegisterConsumerCommand) setConsumerID(consumerID kernel.UUID) error {
	if err := consumerID.Validate(); err != nil {
		return err
	}

	c.consumerID = consumerID
	return nil
}
