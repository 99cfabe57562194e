package commands

import (
	"context"

	"foodorder/internal/core/domain/model/consumer"
)

// RegisterConsumerCommandHandler handles consumer profile registration.
type RegisterConsumerCommandHandler struct {
	uowFactory ConsumerUoWFactory
}

// NewRegisterConsumerCommandHandler creates a handler for consumer registration.
func NewRegisterConsumerCommandHandler(uowFactory ConsumerUoWFactory) RegisterConsumerCommandHandler {
	return RegisterConsumerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. A duplicate email surfaces as
// errs.ErrConflict from the repository.
func (h *RegisterConsumerCommandHandler) Handle(ctx context.Context, cmd RegisterConsumerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newConsumer, err := consumer.NewConsumer(
		cmd.ConsumerID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address(),
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

	if err = uow.ConsumerRepository().Add(ctx, newConsumer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
