package commands

import (
	"context"

	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/domain/services"
)

// AddProductCommandHandler handles catalog product creation.
type AddProductCommandHandler struct {
	uowFactory RestaurantUoWFactory
	policy     services.AccessPolicy
}

// NewAddProductCommandHandler creates a handler for catalog mutation.
func NewAddProductCommandHandler(uowFactory RestaurantUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the command. The restaurant is resolved first so a
// missing restaurant surfaces as NotFound rather than a dangling product;
// only the owning restaurant actor or an administrator may mutate a catalog.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanMutateRestaurant(cmd.RequestedBy(), cmd.RestaurantID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	if _, err := restaurantRepo.Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	newProduct, err := restaurant.NewProduct(
		cmd.ProductID(), cmd.RestaurantID(), cmd.Name(), cmd.Description(),
		cmd.Price(), cmd.Category(),
	)
	if err != nil {
		return err
	}

	if err = restaurantRepo.AddProduct(ctx, newProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
