package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand is the administrative status overwrite, used to
// mark payment as received and similar back-office edits. It carries no acting
// user because it is not owner-scoped.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand accepts any valid target status.
func NewUpdateOrderStatusCommand(orderID kernel.ID, target order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}
