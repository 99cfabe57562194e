package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/consumer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) GetByConsumer(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	panic("not implemented in mock")
}
func (m *MockOrderRepository) GetByRestaurant(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	panic("not implemented in mock")
}
func (m *MockOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockConsumerRepository struct{ mock.Mock }

func (m *MockConsumerRepository) Add(ctx context.Context, c *consumer.Consumer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockConsumerRepository) Update(ctx context.Context, c *consumer.Consumer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockConsumerRepository) Get(ctx context.Context, id kernel.UUID) (*consumer.Consumer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*consumer.Consumer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*restaurant.Restaurant); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockRestaurantRepository) AddProduct(ctx context.Context, p *restaurant.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockRestaurantRepository) UpdateProduct(ctx context.Context, p *restaurant.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockRestaurantRepository) GetProduct(ctx context.Context, id kernel.UUID) (*restaurant.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*restaurant.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockRestaurantRepository) GetProducts(_ context.Context, _ kernel.UUID) ([]*restaurant.Product, error) {
	panic("not implemented in mock")
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *actor.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(_ context.Context, _ kernel.UUID) (*actor.User, error) {
	panic("not implemented in mock")
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*actor.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*actor.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUnitOfWork satisfies every UoW composition used by the handlers.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}
func (m *MockUnitOfWork) TrackedAggregates() []any {
	args := m.Called()
	if tracked, ok := args.Get(0).([]any); ok {
		return tracked
	}
	return nil
}
func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUnitOfWork) ConsumerRepository() ports.ConsumerRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsumerRepository)
}
func (m *MockUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}
func (m *MockUnitOfWork) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockConsumerUoWFactory struct{ mock.Mock }

func (m *MockConsumerUoWFactory) Create() commands.ConsumerUoW {
	args := m.Called()
	return args.Get(0).(commands.ConsumerUoW)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

// recordingPublisher captures events handed over after commit.
type recordingPublisher struct {
	events []order.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event order.DomainEvent) {
	p.events = append(p.events, event)
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

func testConsumer(t *testing.T, id kernel.UUID) *consumer.Consumer {
	t.Helper()
	c, err := consumer.NewConsumer(id, "Ana", "ana@example.com", "", "Rua Augusta 500")
	require.NoError(t, err)
	return c
}

func testRestaurant(t *testing.T, id kernel.UUID, baseTax string) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.RestoreRestaurant(
		id, "Cantina da Nonna", "Italian", "Rua Oscar Freire 300", "",
		kernel.MustNewMoney(baseTax), true,
	)
	require.NoError(t, err)
	return r
}

func testProduct(t *testing.T, restaurantID kernel.UUID, price string) *restaurant.Product {
	t.Helper()
	p, err := restaurant.NewProduct(
		kernel.NewUUID(), restaurantID, "Dish", "", kernel.MustNewMoney(price), "",
	)
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T, consumerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, kernel.MustNewMoney("20.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), consumerID, restaurantID,
		"Rua Augusta 500", time.Now(), []order.Item{item}, kernel.MustNewMoney("10.00"),
	)
	require.NoError(t, err)
	o.ClearEvents()
	return o
}
