package catalogrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/pgerr"

	"gorm.io/gorm"
)

var _ ports.ProductCatalog = (*GormProductCatalog)(nil)

// GormProductCatalog implements ports.ProductCatalog over the products table.
//
// A user may order a product that is visible, or one they own even while it is
// hidden. Anything else is reported as not found.
type GormProductCatalog struct {
	db *gorm.DB
}

func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Resolve returns the current name and price of productID as seen by userID.
func (c *GormProductCatalog) Resolve(
	ctx context.Context,
	productID kernel.ID,
	userID kernel.ID,
) (order.ProductSnapshot, error) {
	if err := errors.Join(productID.Validate(), userID.Validate()); err != nil {
		return order.ProductSnapshot{}, err
	}

	var dto ProductDTO
	err := c.db.WithContext(ctx).
		Where("id = ?", productID.Int64()).
		Where(c.db.Where("visible = ?", true).Or("owner_id = ?", userID.Int64())).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.ProductSnapshot{}, errs.NewObjectNotFoundError("product", productID)
		}
		return order.ProductSnapshot{}, pgerr.Wrap("select product", err)
	}

	return order.NewProductSnapshot(kernel.ID(dto.ID), dto.Name, dto.Price)
}
