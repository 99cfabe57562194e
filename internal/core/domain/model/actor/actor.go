package actor

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not
// created through NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated principal for a request. Token cryptography
// and credential storage live upstream; by the time an Actor exists the
// caller is authenticated, and only authorization decisions remain.
type Actor struct {
	id           kernel.UUID
	email        string
	role         Role
	consumerID   *kernel.UUID
	restaurantID *kernel.UUID

	isConstructed bool
}

// NewActor creates an authenticated principal.
//
// consumerID links a CUSTOMER account to its consumer record (matched by
// email at registration); restaurantID links a RESTAURANT account to the
// restaurant it manages and is required for that role. Either link may be
// nil when not applicable.
func NewActor(id kernel.UUID, email string, role Role, consumerID, restaurantID *kernel.UUID) (Actor, error) {
	a := Actor{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
		a.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	if consumerID != nil {
		if err := consumerID.Validate(); err != nil {
			return Actor{}, err
		}
		id := *consumerID
		a.consumerID = &id
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return Actor{}, err
		}
		id := *restaurantID
		a.restaurantID = &id
	}

	if a.role == RoleRestaurant && a.restaurantID == nil {
		return Actor{}, errs.NewValueIsRequiredError("restaurantId")
	}

	return a, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's account identifier.
func (a Actor) ID() kernel.UUID { return a.id }

// Email returns the actor's unique email address.
func (a Actor) Email() string { return a.email }

// Role returns the actor's role.
func (a Actor) Role() Role { return a.role }

// ConsumerID returns the linked consumer record, or nil.
func (a Actor) ConsumerID() *kernel.UUID {
	if a.consumerID == nil {
		return nil
	}
	id := *a.consumerID
	return &id
}

// RestaurantID returns the linked restaurant, or nil.
func (a Actor) RestaurantID() *kernel.UUID {
	if a.restaurantID == nil {
		return nil
	}
	id := *a.restaurantID
	return &id
}

// IsAdmin reports whether the actor holds the ADMIN role.
func (a Actor) IsAdmin() bool { return a.role == RoleAdmin }

// OwnsConsumer reports whether the actor's consumer link matches the given
// consumer id.
func (a Actor) OwnsConsumer(consumerID kernel.UUID) bool {
	return a.consumerID != nil && a.consumerID.IsEqual(consumerID)
}

// OwnsRestaurant reports whether the actor's restaurant link matches the
// given restaurant id.
func (a Actor) OwnsRestaurant(restaurantID kernel.UUID) bool {
	return a.restaurantID != nil && a.restaurantID.IsEqual(restaurantID)
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = email
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
