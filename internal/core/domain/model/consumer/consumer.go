// Package consumer provides the Consumer aggregate: a registered customer
// who places orders. Consumers are soft-disabled via the active flag rather
// than deleted, since historical orders keep referencing them.
package consumer

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrConsumerIsNotConstructed is returned when a Consumer instance was not
// created through NewConsumer or RestoreConsumer.
var ErrConsumerIsNotConstructed = errors.New("Consumer must be created via NewConsumer constructor")

// Consumer is the aggregate root for a registered customer. The address is
// the source of the delivery address snapshot copied into new orders.
type Consumer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string
	active  bool

	isConstructed bool
}

// NewConsumer creates an active consumer. Name, email, and address are
// required; the email must at least look like an address. Email uniqueness
// is enforced by the repository, not here.
func NewConsumer(id kernel.UUID, name, email, phone, address string) (*Consumer, error) {
	c := &Consumer{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	return c, nil
}

// RestoreConsumer reconstructs a consumer from persistence, including the
// active flag.
func RestoreConsumer(id kernel.UUID, name, email, phone, address string, active bool) (*Consumer, error) {
	c, err := NewConsumer(id, name, email, phone, address)
	if err != nil {
		return nil, err
	}
	c.active = active
	return c, nil
}

// Validate ensures the Consumer was created through a factory method.
func (c *Consumer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConsumerIsNotConstructed
	}
	return nil
}

// ID returns the consumer's unique identifier.
func (c *Consumer) ID() kernel.UUID { return c.id }

// Name returns the consumer's display name.
func (c *Consumer) Name() string { return c.name }

// Email returns the consumer's unique email address.
func (c *Consumer) Email() string { return c.email }

// Phone returns the consumer's contact phone, possibly empty.
func (c *Consumer) Phone() string { return c.phone }

// Address returns the consumer's current address. New orders snapshot this
// value; changing it later never alters historical orders.
func (c *Consumer) Address() string { return c.address }

// IsActive reports whether the consumer may place orders.
func (c *Consumer) IsActive() bool { return c.active }

// Disable soft-deletes the consumer. No transition restrictions apply.
func (c *Consumer) Disable() { c.active = false }

// Enable re-activates a disabled consumer.
func (c *Consumer) Enable() { c.active = true }

// ChangeAddress updates the consumer's address for future orders.
func (c *Consumer) ChangeAddress(address string) error {
	return c.setAddress(address)
}

func (c *Consumer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Consumer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Consumer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", email))
	}
	c.email = email
	return nil
}

func (c *Consumer) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
