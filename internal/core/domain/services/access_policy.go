package services

import (
	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// AccessPolicy is the single decision point for role and ownership checks.
// Every protected operation consults it before touching data.
//
// Rules, evaluated in this precedence:
//  1. ADMIN is always authorized.
//  2. Resource-specific ownership:
//     - consumer data: the actor's consumer link must match;
//     - orders: a CUSTOMER sees its own orders, a RESTAURANT sees orders
//       placed against its restaurant;
//     - product/restaurant mutation: a RESTAURANT actor linked to that
//       restaurant.
//  3. Otherwise: denied with a ForbiddenError.
//
// A zero-value actor means no authenticated caller exists at all; that is
// an UnauthorizedError, distinct from Forbidden.
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanAccessOrder decides whether the actor may read or mutate the order.
func (p AccessPolicy) CanAccessOrder(a actor.Actor, o *order.Order) error {
	if err := p.authenticated(a); err != nil {
		return err
	}
	if a.IsAdmin() {
		return nil
	}
	if a.Role() == actor.RoleCustomer && a.OwnsConsumer(o.ConsumerID()) {
		return nil
	}
	if a.Role() == actor.RoleRestaurant && a.OwnsRestaurant(o.RestaurantID()) {
		return nil
	}
	return errs.NewForbiddenError("order")
}

// CanAccessConsumer decides whether the actor may read or mutate data
// belonging to the given consumer.
func (p AccessPolicy) CanAccessConsumer(a actor.Actor, consumerID kernel.UUID) error {
	if err := p.authenticated(a); err != nil {
		return err
	}
	if a.IsAdmin() {
		return nil
	}
	if a.OwnsConsumer(consumerID) {
		return nil
	}
	return errs.NewForbiddenError("consumer")
}

// CanMutateRestaurant decides whether the actor may change the given
// restaurant's data or catalog.
func (p AccessPolicy) CanMutateRestaurant(a actor.Actor, restaurantID kernel.UUID) error {
	if err := p.authenticated(a); err != nil {
		return err
	}
	if a.IsAdmin() {
		return nil
	}
	if a.Role() == actor.RoleRestaurant && a.OwnsRestaurant(restaurantID) {
		return nil
	}
	return errs.NewForbiddenError("restaurant")
}

// CanViewRestaurantOrders decides whether the actor may list the orders
// placed against the given restaurant.
func (p AccessPolicy) CanViewRestaurantOrders(a actor.Actor, restaurantID kernel.UUID) error {
	if err := p.authenticated(a); err != nil {
		return err
	}
	if a.IsAdmin() {
		return nil
	}
	if a.Role() == actor.RoleRestaurant && a.OwnsRestaurant(restaurantID) {
		return nil
	}
	return errs.NewForbiddenError("orders")
}

// CanAdminister decides admin-only operations: creating restaurants and
// global reports. Ownership never grants these.
func (p AccessPolicy) CanAdminister(a actor.Actor) error {
	if err := p.authenticated(a); err != nil {
		return err
	}
	if a.IsAdmin() {
		return nil
	}
	return errs.NewForbiddenError("administration")
}

func (AccessPolicy) authenticated(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(err)
	}
	return nil
}
