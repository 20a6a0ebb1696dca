package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand replaces every delivery field of an order owned by actor.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	actor    kernel.ID
	delivery order.Delivery

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryCommand(orderID, actor kernel.ID, delivery order.Delivery) (UpdateDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate(), delivery.Validate()); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return UpdateDeliveryCommand{
		orderID:  orderID,
		actor:    actor,
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateDeliveryCommand) Actor() kernel.ID {
	return c.actor
}

func (c UpdateDeliveryCommand) Delivery() order.Delivery {
	return c.delivery
}
