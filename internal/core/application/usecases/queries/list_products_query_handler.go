package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/ports"
)

// ProductResponse is the read-side shape of a catalog product.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
	Price       kernel.Money
	Available   bool
}

// ListProductsQueryHandler lists a restaurant's catalog, available and
// unavailable products alike. Browsing needs no authorization.
type ListProductsQueryHandler struct {
	restaurants ports.RestaurantRepository
}

// NewListProductsQueryHandler creates a handler for catalog listings.
func NewListProductsQueryHandler(restaurants ports.RestaurantRepository) ListProductsQueryHandler {
	return ListProductsQueryHandler{
		restaurants: restaurants,
	}
}

// Handle executes the query. An unknown restaurant yields a not-found error
// rather than an empty catalog.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.restaurants.Get(ctx, query.RestaurantID()); err != nil {
		return nil, err
	}

	products, err := h.restaurants.GetProducts(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	return newProductResponses(products), nil
}

func newProductResponses(products []*restaurant.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, ProductResponse{
			ID:          product.ID(),
			Name:        product.Name(),
			Description: product.Description(),
			Category:    product.Category(),
			Price:       product.Price(),
			Available:   product.IsAvailable(),
		})
	}
	return responses
}
