package ports

import (
	"context"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user account.
	// Returns errs.ErrConflict when the email is already registered.
	Add(ctx context.Context, aggregate *actor.User) error

	// Get retrieves a user account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*actor.User, error)

	// GetByEmail retrieves a user account by its email address.
	GetByEmail(ctx context.Context, email string) (*actor.User, error)
}
