package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// ProductCatalog resolves the current name and price of a catalog item.
// It is called once, when an order is created.
type ProductCatalog interface {
	// Resolve returns the product as visible to userID. Products the user may
	// not see, and products that do not exist, yield *errs.ObjectNotFoundError.
	Resolve(ctx context.Context, productID kernel.ID, userID kernel.ID) (order.ProductSnapshot, error)
}
