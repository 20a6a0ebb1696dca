package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrConfirmPurchaseCommandIsNotConstructed = errors.New(
	"ConfirmPurchaseCommand must be created via NewConfirmPurchaseCommand constructor",
)

// ConfirmPurchaseCommand is the buyer's confirmation of an order. The caller
// sends the target status too; the handler rejects anything but
// PurchaseConfirmed once the order is known to accept a confirmation.
type ConfirmPurchaseCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	actor   kernel.ID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewConfirmPurchaseCommand(orderID, actor kernel.ID, target order.Status) (ConfirmPurchaseCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return ConfirmPurchaseCommand{}, err
	}

	return ConfirmPurchaseCommand{
		orderID: orderID,
		actor:   actor,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPurchaseCommandIsNotConstructed)
}

func (c ConfirmPurchaseCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ConfirmPurchaseCommand) Actor() kernel.ID {
	return c.actor
}

func (c ConfirmPurchaseCommand) Target() order.Status {
	return c.target
}

// requireTarget rejects a caller supplied target that does not match the
// fixed intent of the operation.
func requireTarget(target, expected order.Status) error {
	if target != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid target, expected %s", target, expected),
		)
	}
	return nil
}
