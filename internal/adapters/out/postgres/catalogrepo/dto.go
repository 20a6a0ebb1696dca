// Package catalogrepo resolves products for order creation from the products
// table. The catalog itself is managed elsewhere; this package only reads it.
package catalogrepo

import (
	"time"

	"gorm.io/gorm"
)

// ProductDTO is a catalog row. Soft-deleted rows are never resolved.
type ProductDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	Price     int64  `gorm:"not null"`
	OwnerID   int64  `gorm:"not null;index"`
	Visible   bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ProductDTO) TableName() string {
	return "products"
}
