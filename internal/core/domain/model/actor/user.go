package actor

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a stored account: the credentials and role behind an Actor.
// The password is held only as a bcrypt hash; plain-text passwords never
// reach this type.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         Role
	consumerID   *kernel.UUID
	restaurantID *kernel.UUID

	isConstructed bool
}

// NewUser creates a user account. The same link rules as NewActor apply:
// a RESTAURANT account must carry its restaurant id.
func NewUser(id kernel.UUID, email, passwordHash string, role Role,
	consumerID, restaurantID *kernel.UUID) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
		u.setLinks(consumerID, restaurantID),
	); err != nil {
		return nil, err
	}

	if u.role == RoleRestaurant && u.restaurantID == nil {
		return nil, errs.NewValueIsRequiredError("restaurantId")
	}

	return u, nil
}

// RestoreUser reconstructs a user account from persistence.
func RestoreUser(id kernel.UUID, email, passwordHash string, role Role,
	consumerID, restaurantID *kernel.UUID) (*User, error) {
	return NewUser(id, email, passwordHash, role, consumerID, restaurantID)
}

// Validate ensures the User was created through its constructor.
func (u *User) Validate() error {
	if !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the account identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the account's unique email address.
func (u *User) Email() string { return u.email }

// PasswordHash returns the bcrypt hash of the account password.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the account's role.
func (u *User) Role() Role { return u.role }

// ConsumerID returns the linked consumer record, or nil.
func (u *User) ConsumerID() *kernel.UUID {
	if u.consumerID == nil {
		return nil
	}
	id := *u.consumerID
	return &id
}

// RestaurantID returns the linked restaurant, or nil.
func (u *User) RestaurantID() *kernel.UUID {
	if u.restaurantID == nil {
		return nil
	}
	id := *u.restaurantID
	return &id
}

// Actor derives the authenticated principal for this account.
func (u *User) Actor() (Actor, error) {
	return NewActor(u.id, u.email, u.role, u.consumerID, u.restaurantID)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setLinks(consumerID, restaurantID *kernel.UUID) error {
	if consumerID != nil {
		if err := consumerID.Validate(); err != nil {
			return err
		}
		id := *consumerID
		u.consumerID = &id
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return err
		}
		id := *restaurantID
		u.restaurantID = &id
	}
	return nil
}
