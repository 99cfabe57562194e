package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	consumerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	pendingOrder := testOrder(t, consumerID, restaurantID)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		pendingOrder.ID(), order.Confirmed, restaurantActor(t, restaurantID),
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		repo.On("Update", mock.Anything, pendingOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("TrackedAggregates").Return([]any{pendingOrder}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := &recordingPublisher{}
	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Confirmed, pendingOrder.Status())

	// the status change event is delivered after commit and then drained
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "order.status_changed", publisher.events[0].EventName())
	assert.Empty(t, pendingOrder.Events())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ForbiddenForOtherCustomer(t *testing.T) {
	ctx := t.Context()
	pendingOrder := testOrder(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderStatusCommand(
		pendingOrder.ID(), order.Canceled, customerActor(t, kernel.NewUUID()),
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Pending, pendingOrder.Status())
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	pendingOrder := testOrder(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewUpdateOrderStatusCommand(
		pendingOrder.ID(), order.Delivered, adminActor(t),
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "PENDING", transitionErr.From)
	assert.Equal(t, "DELIVERED", transitionErr.To)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_RetriesOnVersionConflict(t *testing.T) {
	ctx := t.Context()
	consumerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	requestedBy := restaurantActor(t, restaurantID)

	staleOrder := testOrder(t, consumerID, restaurantID)
	cmd, err := commands.NewUpdateOrderStatusCommand(staleOrder.ID(), order.Canceled, requestedBy)
	require.NoError(t, err)

	// first attempt loses the optimistic-lock race
	repo1 := new(MockOrderRepository)
	uow1 := new(MockUnitOfWork)
	mock.InOrder(
		uow1.On("Begin", ctx).Return(nil).Once(),
		uow1.On("OrderRepository").Return(repo1).Once(),
		repo1.On("Get", mock.Anything, staleOrder.ID()).Return(staleOrder, nil).Once(),
		repo1.On("Update", mock.Anything, staleOrder).
			Return(errs.NewVersionConflictError("orderId", staleOrder.ID())).Once(),
		uow1.On("Rollback", ctx).Return(nil).Once(),
	)

	// second attempt re-reads the order, now in CONFIRMED, and re-validates
	freshOrder := testOrder(t, consumerID, restaurantID)
	require.NoError(t, freshOrder.ChangeStatus(order.Confirmed))
	freshOrder.ClearEvents()

	repo2 := new(MockOrderRepository)
	uow2 := new(MockUnitOfWork)
	mock.InOrder(
		uow2.On("Begin", ctx).Return(nil).Once(),
		uow2.On("OrderRepository").Return(repo2).Once(),
		repo2.On("Get", mock.Anything, staleOrder.ID()).Return(freshOrder, nil).Once(),
		repo2.On("Update", mock.Anything, freshOrder).Return(nil).Once(),
		uow2.On("Commit", ctx).Return(nil).Once(),
		uow2.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow1).Once()
	factory.On("Create").Return(uow2).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Canceled, freshOrder.Status())
	uow1.AssertExpectations(t)
	uow2.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ConflictAfterAllRetries(t *testing.T) {
	ctx := t.Context()
	consumerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	requestedBy := restaurantActor(t, restaurantID)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Confirmed, requestedBy)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	for i := 0; i < 3; i++ {
		contested := testOrder(t, consumerID, restaurantID)
		repo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", mock.Anything, orderID).Return(contested, nil).Once(),
			repo.On("Update", mock.Anything, contested).
				Return(errs.NewVersionConflictError("orderId", orderID)).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory.On("Create").Return(uow).Once()
	}

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionConflict)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Confirmed, adminActor(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
