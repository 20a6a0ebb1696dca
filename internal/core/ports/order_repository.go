package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Reads made inside a unit of work lock the row until commit, so a
// read-modify-write on one order is serialized against concurrent writers.
type OrderRepository interface {
	// Add inserts a new order and assigns its store-generated id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. It fails with
	// *errs.VersionIsInvalidError when the stored version moved on since the order was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, without any owner check.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetOwned retrieves an order by id only if userID owns it. A foreign
	// order is reported as not found.
	GetOwned(ctx context.Context, id kernel.ID, userID kernel.ID) (*order.Order, error)
}
