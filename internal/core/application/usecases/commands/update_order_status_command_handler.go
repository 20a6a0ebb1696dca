package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies administrative status overwrites.
// Orders in the refund track are rejected with *errs.InvalidTransitionError.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        clockOrDefault(now),
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, anyOrder(cmd.OrderID()), func(o *order.Order) error {
		return o.SetStatusByAdmin(cmd.Target(), h.now().UTC())
	})
}
