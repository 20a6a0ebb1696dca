package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// UpdateDeliveryCommandHandler changes the delivery address while the order
// is still PaymentPending or PaymentComplete.
type UpdateDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewUpdateDeliveryCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        clockOrDefault(now),
	}
}

func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, ownedOrder(cmd.OrderID(), cmd.Actor()), func(o *order.Order) error {
		return o.ChangeDelivery(cmd.Delivery(), h.now().UTC())
	})
}
