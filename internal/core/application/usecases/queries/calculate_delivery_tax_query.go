package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

// ErrCalculateDeliveryTaxQueryIsNotConstructed is returned when the query
// was not created through NewCalculateDeliveryTaxQuery.
var ErrCalculateDeliveryTaxQueryIsNotConstructed = errors.New(
	"CalculateDeliveryTaxQuery must be created via NewCalculateDeliveryTaxQuery constructor",
)

// CalculateDeliveryTaxQuery quotes the delivery tax for shipping from a
// restaurant to a postal code. A malformed CEP is rejected here, before the
// zone table is ever consulted; an unmatched prefix surfaces later as an
// out-of-delivery-area business rule violation.
type CalculateDeliveryTaxQuery struct {
	restaurantID kernel.UUID
	cep          kernel.CEP

	guard guard.ConstructorGuard
}

// NewCalculateDeliveryTaxQuery creates a delivery tax quote query from a raw
// CEP string such as "01310-100".
func NewCalculateDeliveryTaxQuery(restaurantID kernel.UUID, rawCEP string) (CalculateDeliveryTaxQuery, error) {
	q := CalculateDeliveryTaxQuery{guard: guard.NewConstructorGuard()}

	if err := restaurantID.Validate(); err != nil {
		return CalculateDeliveryTaxQuery{}, err
	}

	cep, err := kernel.NewCEP(rawCEP)
	if err != nil {
		return CalculateDeliveryTaxQuery{}, err
	}

	q.restaurantID = restaurantID
	q.cep = cep
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateDeliveryTaxQuery) Validate() error {
	return q.guard.Validate(ErrCalculateDeliveryTaxQueryIsNotConstructed)
}

// RestaurantID returns the restaurant shipping the order.
func (q CalculateDeliveryTaxQuery) RestaurantID() kernel.UUID { return q.restaurantID }

// CEP returns the destination postal code.
func (q CalculateDeliveryTaxQuery) CEP() kernel.CEP { return q.cep }

// CalculateDeliveryTaxQueryResponse is the delivery tax quote.
type CalculateDeliveryTaxQueryResponse struct {
	Zone        string
	DeliveryTax kernel.Money
}
