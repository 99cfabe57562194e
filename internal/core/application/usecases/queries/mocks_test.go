package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	panic("not implemented in mock")
}
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error {
	panic("not implemented in mock")
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetByConsumer(ctx context.Context, consumerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, consumerID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetAllPendingBefore(_ context.Context, _ time.Time) ([]*order.Order, error) {
	panic("not implemented in mock")
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(_ context.Context, _ *restaurant.Restaurant) error {
	panic("not implemented in mock")
}
func (m *MockRestaurantRepository) Update(_ context.Context, _ *restaurant.Restaurant) error {
	panic("not implemented in mock")
}
func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*restaurant.Restaurant); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockRestaurantRepository) AddProduct(_ context.Context, _ *restaurant.Product) error {
	panic("not implemented in mock")
}
func (m *MockRestaurantRepository) UpdateProduct(_ context.Context, _ *restaurant.Product) error {
	panic("not implemented in mock")
}
func (m *MockRestaurantRepository) GetProduct(_ context.Context, _ kernel.UUID) (*restaurant.Product, error) {
	panic("not implemented in mock")
}
func (m *MockRestaurantRepository) GetProducts(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.Product, error) {
	args := m.Called(ctx, restaurantID)
	if products, ok := args.Get(0).([]*restaurant.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func adminActor(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), "root@example.com", actor.RoleAdmin, nil, nil)
	require.NoError(t, err)
	return a
}

func customerActor(t *testing.T, consumerID kernel.UUID) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), "ana@example.com", actor.RoleCustomer, &consumerID, nil)
	require.NoError(t, err)
	return a
}

func restaurantActor(t *testing.T, restaurantID kernel.UUID) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), "staff@example.com", actor.RoleRestaurant, nil, &restaurantID)
	require.NoError(t, err)
	return a
}

func testOrder(t *testing.T, consumerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, kernel.MustNewMoney("20.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), consumerID, restaurantID,
		"Rua Augusta 500", time.Now(), []order.Item{item}, kernel.MustNewMoney("10.00"),
	)
	require.NoError(t, err)
	return o
}

func testRestaurant(t *testing.T, id kernel.UUID, baseTax string) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(
		id, "Cantina da Nonna", "Italian", "Rua Oscar Freire 300", "",
		kernel.MustNewMoney(baseTax),
	)
	require.NoError(t, err)
	return r
}
