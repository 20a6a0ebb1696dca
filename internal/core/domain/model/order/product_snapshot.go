package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrProductSnapshotIsNotConstructed = errors.New("ProductSnapshot must be created via NewProductSnapshot constructor")

// ProductSnapshot is the catalog item's name and price copied at creation time.
// It is never refreshed, so later catalog edits do not change what the buyer pays.
type ProductSnapshot struct {
	productID kernel.ID
	name      string
	price     int64

	guard guard.ConstructorGuard
}

// NewProductSnapshot validates the catalog answer. The price is an integer
// amount in the smallest currency unit and may be zero for free items.
func NewProductSnapshot(productID kernel.ID, name string, price int64) (ProductSnapshot, error) {
	s := ProductSnapshot{
		productID: productID,
		name:      name,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}

	var priceErr error
	if price < 0 {
		priceErr = errs.NewValueIsInvalidErrorWithCause("product_price", fmt.Errorf("%d is negative", price))
	}

	if err := errors.Join(
		productID.Validate(),
		required("product_name", name),
		priceErr,
	); err != nil {
		return ProductSnapshot{}, err
	}

	return s, nil
}

func (s ProductSnapshot) Validate() error {
	return s.guard.Validate(ErrProductSnapshotIsNotConstructed)
}

func (s ProductSnapshot) ProductID() kernel.ID {
	return s.productID
}

func (s ProductSnapshot) Name() string {
	return s.name
}

func (s ProductSnapshot) Price() int64 {
	return s.price
}
