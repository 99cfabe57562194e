package queries

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// CalculateDeliveryTaxQueryHandler quotes the delivery tax for a destination:
// the restaurant's base tax plus the surcharge of the destination's distance
// zone. Quoting is open to unauthenticated callers.
type CalculateDeliveryTaxQueryHandler struct {
	restaurants ports.RestaurantRepository
	zones       services.DeliveryZoneTable
}

// NewCalculateDeliveryTaxQueryHandler creates a handler for delivery tax quotes.
func NewCalculateDeliveryTaxQueryHandler(restaurants ports.RestaurantRepository,
	zones services.DeliveryZoneTable) CalculateDeliveryTaxQueryHandler {
	return CalculateDeliveryTaxQueryHandler{
		restaurants: restaurants,
		zones:       zones,
	}
}

// Handle executes the query.
func (h CalculateDeliveryTaxQueryHandler) Handle(
	ctx context.Context,
	query CalculateDeliveryTaxQuery,
) (CalculateDeliveryTaxQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateDeliveryTaxQueryResponse{}, err
	}

	selectedRestaurant, err := h.restaurants.Get(ctx, query.RestaurantID())
	if err != nil {
		return CalculateDeliveryTaxQueryResponse{}, err
	}

	zone, err := h.zones.ZoneFor(query.CEP())
	if err != nil {
		return CalculateDeliveryTaxQueryResponse{}, err
	}

	tax := selectedRestaurant.DeliveryTax().Add(h.zones.Surcharge(zone)).Round2()
	return CalculateDeliveryTaxQueryResponse{
		Zone:        zone.String(),
		DeliveryTax: tax,
	}, nil
}
