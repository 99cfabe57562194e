package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	productID := kernel.NewUUID()
	owned := testRestaurant(t, restaurantID, "10.00")

	cmd, err := commands.NewAddProductCommand(
		productID, restaurantID, restaurantActor(t, restaurantID),
		"Lasagna", "Homemade lasagna", "Mains", kernel.MustNewMoney("42.90"),
	)
	require.NoError(t, err)

	var saved *restaurant.Product
	repo := new(MockRestaurantRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, restaurantID).Return(owned, nil).Once(),
		repo.On("AddProduct", mock.Anything, mock.AnythingOfType("*restaurant.Product")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*restaurant.Product) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, saved)
	assert.True(t, saved.BelongsTo(restaurantID))
	assert.Equal(t, "42.90", saved.Price().String())
	assert.True(t, saved.IsAvailable())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddProductCommandHandler_Handle_ForbiddenForOtherRestaurant(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewAddProductCommand(
		kernel.NewUUID(), restaurantID, restaurantActor(t, kernel.NewUUID()),
		"Lasagna", "", "", kernel.MustNewMoney("42.90"),
	)
	require.NoError(t, err)

	factory := new(MockRestaurantUoWFactory)
	h := commands.NewAddProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAddProductCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewAddProductCommand(
		kernel.NewUUID(), restaurantID, adminActor(t),
		"Lasagna", "", "", kernel.MustNewMoney("42.90"),
	)
	require.NoError(t, err)

	repo := new(MockRestaurantRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, restaurantID).
			Return(nil, errs.NewObjectNotFoundError("restaurantId", restaurantID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
