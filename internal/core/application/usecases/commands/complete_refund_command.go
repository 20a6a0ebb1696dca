package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrCompleteRefundCommandIsNotConstructed = errors.New(
	"CompleteRefundCommand must be created via NewCompleteRefundCommand constructor",
)

// CompleteRefundCommand finishes a requested refund. The target status is
// applied as given, so it only has to be a valid status.
type CompleteRefundCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	actor   kernel.ID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewCompleteRefundCommand(orderID, actor kernel.ID, target order.Status) (CompleteRefundCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), target.Validate()); err != nil {
		return CompleteRefundCommand{}, err
	}

	return CompleteRefundCommand{
		orderID: orderID,
		actor:   actor,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteRefundCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRefundCommandIsNotConstructed)
}

func (c CompleteRefundCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CompleteRefundCommand) Actor() kernel.ID {
	return c.actor
}

func (c CompleteRefundCommand) Target() order.Status {
	return c.target
}
