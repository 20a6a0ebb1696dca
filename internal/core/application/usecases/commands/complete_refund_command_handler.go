package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// CompleteRefundCommandHandler completes refunds of orders in RefundRequested.
type CompleteRefundCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCompleteRefundCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CompleteRefundCommandHandler {
	return CompleteRefundCommandHandler{
		uowFactory: uowFactory,
		now:        clockOrDefault(now),
	}
}

func (h *CompleteRefundCommandHandler) Handle(ctx context.Context, cmd CompleteRefundCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, ownedOrder(cmd.OrderID(), cmd.Actor()), func(o *order.Order) error {
		return o.CompleteRefund(cmd.Target(), h.now().UTC())
	})
}
