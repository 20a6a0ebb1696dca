package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ErrProductNotFound is returned when the catalog does not resolve the product
// for the acting user. It is deliberately distinct from a missing order.
var ErrProductNotFound = errors.New("product not found")

// CreateOrderCommandHandler creates orders in PaymentPending status with a
// snapshot of the product's current name and price.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, time.Now)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrProductNotFound) {
//	    // unknown or hidden product
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation. A nil
// clock defaults to time.Now.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	now func() time.Time,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		now:        clockOrDefault(now),
	}
}

// Handle resolves the product once, then inserts the new order. The returned
// order carries the id assigned by the store.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.catalog.Resolve(ctx, cmd.ProductID(), cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, cmd.ProductID())
		}
		return nil, err
	}

	created, err := order.NewOrder(cmd.UserID(), snapshot, cmd.Quantity(), cmd.Delivery(), h.now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
