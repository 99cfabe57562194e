package commands

import (
	"context"

	"foodorder/internal/core/domain/model/actor"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler handles login account creation. Passwords are
// hashed with bcrypt before the account is persisted.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. A duplicate email surfaces as
// errs.ErrConflict from the repository.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	newUser, err := actor.NewUser(
		cmd.UserID(), cmd.Email(), string(hash), cmd.Role(),
		cmd.ConsumerID(), cmd.RestaurantID(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
