package commands

import (
	"context"

	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/domain/services"
)

// CreateRestaurantCommandHandler handles restaurant onboarding.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	policy     services.AccessPolicy
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant onboarding.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the onboarding command. Only administrators may onboard
// restaurants; a duplicate name surfaces as errs.ErrConflict from the
// repository.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanAdminister(cmd.RequestedBy()); err != nil {
		return err
	}

	newRestaurant, err := restaurant.NewRestaurant(
		cmd.RestaurantID(), cmd.Name(), cmd.Category(), cmd.Address(), cmd.Phone(),
		cmd.DeliveryTax(),
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

	if err = uow.RestaurantRepository().Add(ctx, newRestaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
