package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	requestedBy := adminActor(t)

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Confirmed, requestedBy)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Confirmed, cmd.Status())
	assert.NoError(t, cmd.Validate())
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown, adminActor(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateOrderStatusCommand_MissingActor(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Confirmed, actor.Actor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestNewCancelOrderCommand_TargetsCanceled(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), adminActor(t))
	require.NoError(t, err)
	assert.Equal(t, order.Canceled, cmd.Status())
}

func TestUpdateOrderStatusCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.UpdateOrderStatusCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
