package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// RequestRefundCommandHandler moves PaymentPending and PaymentComplete orders
// to RefundRequested. The refund window is consulted for orders that were
// confirmed at some point; order.AnyRefundWindow keeps it always open.
// A target other than RefundRequested is rejected after the status guard.
type RequestRefundCommandHandler struct {
	uowFactory OrderUoWFactory
	window     order.RefundWindow
	now        func() time.Time
}

// NewRequestRefundCommandHandler creates the handler. A nil window never closes.
func NewRequestRefundCommandHandler(
	uowFactory OrderUoWFactory,
	window order.RefundWindow,
	now func() time.Time,
) RequestRefundCommandHandler {
	if window == nil {
		window = order.AnyRefundWindow
	}
	return RequestRefundCommandHandler{
		uowFactory: uowFactory,
		window:     window,
		now:        clockOrDefault(now),
	}
}

func (h *RequestRefundCommandHandler) Handle(ctx context.Context, cmd RequestRefundCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, ownedOrder(cmd.OrderID(), cmd.Actor()), func(o *order.Order) error {
		if err := o.RequestRefund(h.now().UTC(), h.window); err != nil {
			return err
		}
		return requireTarget(cmd.Target(), order.RefundRequested)
	})
}
