package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListConsumerOrdersQueryHandler_Handle_OwnerListsOrders(t *testing.T) {
	ctx := t.Context()
	consumerID := kernel.NewUUID()
	history := []*order.Order{
		testOrder(t, consumerID, kernel.NewUUID()),
		testOrder(t, consumerID, kernel.NewUUID()),
	}

	query, err := queries.NewListConsumerOrdersQuery(consumerID, customerActor(t, consumerID))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetByConsumer", mock.Anything, consumerID).Return(history, nil).Once()

	h := queries.NewListConsumerOrdersQueryHandler(repo)
	responses, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.True(t, responses[0].ConsumerID.IsEqual(consumerID))
	repo.AssertExpectations(t)
}

func TestListConsumerOrdersQueryHandler_Handle_ForbiddenBeforeAnyRead(t *testing.T) {
	ctx := t.Context()
	consumerID := kernel.NewUUID()

	query, err := queries.NewListConsumerOrdersQuery(consumerID, customerActor(t, kernel.NewUUID()))
	require.NoError(t, err)

	repo := new(MockOrderRepository)

	h := queries.NewListConsumerOrdersQueryHandler(repo)
	_, err = h.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrForbidden)
	repo.AssertNotCalled(t, "GetByConsumer", mock.Anything, mock.Anything)
}

func TestListRestaurantOrdersQueryHandler_Handle_RestaurantListsOwnOrders(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	incoming := []*order.Order{testOrder(t, kernel.NewUUID(), restaurantID)}

	query, err := queries.NewListRestaurantOrdersQuery(restaurantID, restaurantActor(t, restaurantID))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetByRestaurant", mock.Anything, restaurantID).Return(incoming, nil).Once()

	h := queries.NewListRestaurantOrdersQueryHandler(repo)
	responses, err := h.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].RestaurantID.IsEqual(restaurantID))
	repo.AssertExpectations(t)
}

func TestListRestaurantOrdersQueryHandler_Handle_ForbiddenForCustomer(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()

	query, err := queries.NewListRestaurantOrdersQuery(restaurantID, customerActor(t, kernel.NewUUID()))
	require.NoError(t, err)

	h := queries.NewListRestaurantOrdersQueryHandler(new(MockOrderRepository))
	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestListRestaurantOrdersQueryHandler_Handle_AdminOverride(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()

	query, err := queries.NewListRestaurantOrdersQuery(restaurantID, adminActor(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetByRestaurant", mock.Anything, restaurantID).Return([]*order.Order{}, nil).Once()

	h := queries.NewListRestaurantOrdersQueryHandler(repo)
	responses, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Empty(t, responses)
}
