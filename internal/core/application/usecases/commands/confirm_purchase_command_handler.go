package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// ConfirmPurchaseCommandHandler confirms purchases of the acting user's orders.
// Orders in the refund track cannot be confirmed. The requested target is
// checked only after the status guard passed, so a forbidden confirmation
// reports the transition error whatever the target.
type ConfirmPurchaseCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewConfirmPurchaseCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) ConfirmPurchaseCommandHandler {
	return ConfirmPurchaseCommandHandler{
		uowFactory: uowFactory,
		now:        clockOrDefault(now),
	}
}

func (h *ConfirmPurchaseCommandHandler) Handle(ctx context.Context, cmd ConfirmPurchaseCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, ownedOrder(cmd.OrderID(), cmd.Actor()), func(o *order.Order) error {
		if err := o.ConfirmPurchase(h.now().UTC()); err != nil {
			return err
		}
		return requireTarget(cmd.Target(), order.PurchaseConfirmed)
	})
}
