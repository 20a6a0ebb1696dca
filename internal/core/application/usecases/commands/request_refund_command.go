package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrRequestRefundCommandIsNotConstructed = errors.New(
	"RequestRefundCommand must be created via NewRequestRefundCommand constructor",
)

// RequestRefundCommand asks for a refund of an order owned by actor. The
// target must be RefundRequested.
type RequestRefundCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	actor   kernel.ID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewRequestRefundCommand(orderID, actor kernel.ID, target order.Status) (RequestRefundCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return RequestRefundCommand{}, err
	}

	return RequestRefundCommand{
		orderID: orderID,
		actor:   actor,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RequestRefundCommand) Validate() error {
	return c.guard.Validate(ErrRequestRefundCommandIsNotConstructed)
}

func (c RequestRefundCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c RequestRefundCommand) Actor() kernel.ID {
	return c.actor
}

func (c RequestRefundCommand) Target() order.Status {
	return c.target
}
