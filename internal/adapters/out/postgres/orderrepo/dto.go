// Package orderrepo persists order aggregates with GORM. It maps between the
// domain aggregate and the orders table, which also carries the optimistic
// concurrency version and the product snapshot taken at creation.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexes cover the list queries: by owner and creation time, by product and by status.
type OrderDTO struct {
	ID           int64       `gorm:"primaryKey;autoIncrement"`
	UserID       int64       `gorm:"not null;index:idx_orders_user_created,priority:1"`
	ProductID    int64       `gorm:"not null;index"`
	ProductName  string      `gorm:"not null"`
	ProductPrice int64       `gorm:"not null"`
	Quantity     int         `gorm:"not null"`
	Status       int         `gorm:"not null;index"`
	Delivery     DeliveryDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	CreatedAt    time.Time   `gorm:"not null;index:idx_orders_user_created,priority:2"`
	ConfirmedAt  *time.Time
	Version      int `gorm:"not null;default:1"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO is the embedded delivery block of an order row.
type DeliveryDTO struct {
	Receiver            string `gorm:"not null"`
	ReceiverPhoneNumber string `gorm:"not null"`
	Name                string
	Address             string `gorm:"not null"`
	PostCode            string `gorm:"not null"`
	Request             string
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Delivery()
	return OrderDTO{
		ID:           o.ID().Int64(),
		UserID:       o.UserID().Int64(),
		ProductID:    o.Product().ProductID().Int64(),
		ProductName:  o.Product().Name(),
		ProductPrice: o.Product().Price(),
		Quantity:     o.Quantity(),
		Status:       int(o.Status()),
		Delivery: DeliveryDTO{
			Receiver:            d.Receiver(),
			ReceiverPhoneNumber: d.ReceiverPhoneNumber(),
			Name:                d.Name(),
			Address:             d.Address(),
			PostCode:            d.PostCode(),
			Request:             d.Request(),
		},
		CreatedAt:   o.CreatedAt(),
		ConfirmedAt: o.ConfirmedAt(),
		Version:     o.Version(),
	}
}

// mutableColumns lists the columns an update may change. Zero values are
// written too, so a cleared delivery request is persisted.
func (dto OrderDTO) mutableColumns() map[string]any {
	return map[string]any{
		"status":                         dto.Status,
		"delivery_receiver":              dto.Delivery.Receiver,
		"delivery_receiver_phone_number": dto.Delivery.ReceiverPhoneNumber,
		"delivery_name":                  dto.Delivery.Name,
		"delivery_address":               dto.Delivery.Address,
		"delivery_post_code":             dto.Delivery.PostCode,
		"delivery_request":               dto.Delivery.Request,
		"confirmed_at":                   dto.ConfirmedAt,
		"version":                        dto.Version,
	}
}

// toDomain reconstructs the aggregate with RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	product, err := order.NewProductSnapshot(kernel.ID(dto.ProductID), dto.ProductName, dto.ProductPrice)
	if err != nil {
		return nil, err
	}

	delivery, err := order.NewDelivery(
		dto.Delivery.Receiver,
		dto.Delivery.ReceiverPhoneNumber,
		dto.Delivery.Name,
		dto.Delivery.Address,
		dto.Delivery.PostCode,
		dto.Delivery.Request,
	)
	if err != nil {
		return nil, err
	}

	var confirmedAt *time.Time
	if dto.ConfirmedAt != nil {
		at := dto.ConfirmedAt.UTC()
		confirmedAt = &at
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.UserID),
		product,
		dto.Quantity,
		delivery,
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
		confirmedAt,
		dto.Version,
	)
}
