package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	for _, target := range order.Statuses() {
		cmd, err := commands.NewUpdateOrderStatusCommand(11, target)
		require.NoError(t, err)
		assert.EqualValues(t, 11, cmd.OrderID())
		assert.Equal(t, target, cmd.Target())
	}

	_, err := commands.NewUpdateOrderStatusCommand(11, order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateOrderStatusCommand(0, order.PaymentComplete)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewUpdateDeliveryCommand(t *testing.T) {
	cmd, err := commands.NewUpdateDeliveryCommand(11, 7, newDelivery(t, "9 Side St"))
	require.NoError(t, err)
	assert.EqualValues(t, 11, cmd.OrderID())
	assert.EqualValues(t, 7, cmd.Actor())
	assert.Equal(t, "9 Side St", cmd.Delivery().Address())

	_, err = commands.NewUpdateDeliveryCommand(11, 7, order.Delivery{})
	require.ErrorIs(t, err, order.ErrDeliveryIsNotConstructed)

	_, err = commands.NewUpdateDeliveryCommand(11, 0, newDelivery(t, "9 Side St"))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewConfirmPurchaseCommand(t *testing.T) {
	cmd, err := commands.NewConfirmPurchaseCommand(11, 7, order.PurchaseConfirmed)
	require.NoError(t, err)
	assert.EqualValues(t, 11, cmd.OrderID())
	assert.EqualValues(t, 7, cmd.Actor())
	assert.Equal(t, order.PurchaseConfirmed, cmd.Target())

	// the target is judged against the loaded order, not here
	cmd, err = commands.NewConfirmPurchaseCommand(11, 7, order.RefundRequested)
	require.NoError(t, err)
	assert.Equal(t, order.RefundRequested, cmd.Target())

	_, err = commands.NewConfirmPurchaseCommand(0, 7, order.PurchaseConfirmed)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewRequestRefundCommand(t *testing.T) {
	cmd, err := commands.NewRequestRefundCommand(11, 7, order.RefundRequested)
	require.NoError(t, err)
	assert.EqualValues(t, 11, cmd.OrderID())
	assert.EqualValues(t, 7, cmd.Actor())
	assert.Equal(t, order.RefundRequested, cmd.Target())

	cmd, err = commands.NewRequestRefundCommand(11, 7, order.RefundComplete)
	require.NoError(t, err)
	assert.Equal(t, order.RefundComplete, cmd.Target())

	_, err = commands.NewRequestRefundCommand(11, 0, order.RefundRequested)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCompleteRefundCommand(t *testing.T) {
	cmd, err := commands.NewCompleteRefundCommand(11, 7, order.RefundComplete)
	require.NoError(t, err)
	assert.Equal(t, order.RefundComplete, cmd.Target())

	_, err = commands.NewCompleteRefundCommand(11, 7, order.Status(42))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLifecycleCommands_ZeroValueIsNotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.UpdateOrderStatusCommand{}.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	assert.ErrorIs(t, commands.UpdateDeliveryCommand{}.Validate(), commands.ErrUpdateDeliveryCommandIsNotConstructed)
	assert.ErrorIs(t, commands.ConfirmPurchaseCommand{}.Validate(), commands.ErrConfirmPurchaseCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RequestRefundCommand{}.Validate(), commands.ErrRequestRefundCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CompleteRefundCommand{}.Validate(), commands.ErrCompleteRefundCommandIsNotConstructed)
}
