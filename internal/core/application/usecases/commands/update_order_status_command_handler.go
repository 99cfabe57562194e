package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// maxStatusUpdateAttempts bounds the optimistic-lock retry loop for a single
// status update request.
const maxStatusUpdateAttempts = 3

// UpdateOrderStatusCommandHandler handles order status updates and
// cancellations: authorization against the order's owners, transition
// validation, and optimistic-concurrency persistence.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	policy     services.AccessPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory,
	publisher ports.EventPublisher) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the status update command.
//
// A losing concurrent writer never overwrites blindly: on a version conflict
// the order is re-read and the transition re-validated against its current
// status, up to maxStatusUpdateAttempts times. The conflict surfaces to the
// caller only when every attempt loses the race.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var err error
	for attempt := 0; attempt < maxStatusUpdateAttempts; attempt++ {
		err = h.handleOnce(ctx, cmd)
		if !errors.Is(err, errs.ErrVersionConflict) {
			return err
		}
	}
	return err
}

func (h *UpdateOrderStatusCommandHandler) handleOnce(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.CanAccessOrder(cmd.RequestedBy(), aggregate); err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvents(ctx, h.publisher, uow)
	return nil
}
