// Package queries contains read operations over stored orders.
// Queries bypass the aggregate and read projections straight from the orders
// table; they take no locks and see a point-in-time snapshot.
package queries

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/pgerr"

	"gorm.io/gorm"
)

// OrderSummary is one row of a list view.
type OrderSummary struct {
	ID           kernel.ID
	Status       order.Status
	ProductName  string
	ProductPrice int64
	Quantity     int
	CreatedAt    time.Time
}

// OrderListResponse is the result of every list query. Count is the number of
// orders returned, not the number of matching orders.
type OrderListResponse struct {
	Count  int
	Orders []OrderSummary
}

// Page limits a list query. The zero Page returns everything.
type Page struct {
	Limit  int
	Offset int
}

// NewPage validates limit and offset. Zero means "not set" for both.
func NewPage(limit, offset int) (Page, error) {
	var err error
	if limit < 0 || limit > maxPageLimit {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxPageLimit))
	}
	if offset < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("offset", offset, 0, math.MaxInt))
	}
	if err != nil {
		return Page{}, err
	}
	return Page{Limit: limit, Offset: offset}, nil
}

const maxPageLimit = 1000

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	if p.Offset > 0 {
		db = db.Offset(p.Offset)
	}
	return db
}

// listOrders runs a list projection. Newest orders come first; orders created
// at the same instant keep insertion order.
func listOrders(ctx context.Context, db *gorm.DB, page Page, query string, args ...any) (OrderListResponse, error) {
	stmt := db.WithContext(ctx).
		Table("orders").
		Select("id, status, product_name, product_price, quantity, created_at").
		Where(query, args...).
		Order("created_at DESC").
		Order("id ASC")

	rows, err := page.apply(stmt).Rows()
	if err != nil {
		return OrderListResponse{}, pgerr.Wrap("list orders", err)
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var summary OrderSummary
		var id int64
		var status int

		err = rows.Scan(
			&id,
			&status,
			&summary.ProductName,
			&summary.ProductPrice,
			&summary.Quantity,
			&summary.CreatedAt,
		)
		if err != nil {
			return OrderListResponse{}, pgerr.Wrap("list orders", err)
		}

		summary.ID = kernel.ID(id)
		summary.Status = order.Status(status)
		summary.CreatedAt = summary.CreatedAt.UTC()
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return OrderListResponse{}, pgerr.Wrap("list orders", err)
	}

	return OrderListResponse{Count: len(orders), Orders: orders}, nil
}

// OrderDetails is the full single-order view.
type OrderDetails struct {
	ID           kernel.ID
	UserID       kernel.ID
	ProductID    kernel.ID
	ProductName  string
	ProductPrice int64
	Quantity     int
	Status       order.Status
	Delivery     DeliveryDetails
	CreatedAt    time.Time
	ConfirmedAt  *time.Time
}

type DeliveryDetails struct {
	Receiver            string
	ReceiverPhoneNumber string
	Name                string
	Address             string
	PostCode            string
	Request             string
}

func getOrderDetails(ctx context.Context, db *gorm.DB, orderID kernel.ID, query string, args ...any) (OrderDetails, error) {
	rows, err := db.WithContext(ctx).
		Table("orders").
		Select(`id, user_id, product_id, product_name, product_price, quantity, status,
			delivery_receiver, delivery_receiver_phone_number, delivery_name,
			delivery_address, delivery_post_code, delivery_request,
			created_at, confirmed_at`).
		Where(query, args...).
		Limit(1).
		Rows()
	if err != nil {
		return OrderDetails{}, pgerr.Wrap("get order", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetails{}, pgerr.Wrap("get order", err)
		}
		return OrderDetails{}, errs.NewObjectNotFoundError("order", orderID)
	}

	var details OrderDetails
	var id, userID, productID int64
	var status int
	var confirmedAt sql.NullTime

	err = rows.Scan(
		&id,
		&userID,
		&productID,
		&details.ProductName,
		&details.ProductPrice,
		&details.Quantity,
		&status,
		&details.Delivery.Receiver,
		&details.Delivery.ReceiverPhoneNumber,
		&details.Delivery.Name,
		&details.Delivery.Address,
		&details.Delivery.PostCode,
		&details.Delivery.Request,
		&details.CreatedAt,
		&confirmedAt,
	)
	if err != nil {
		return OrderDetails{}, pgerr.Wrap("get order", err)
	}

	details.ID = kernel.ID(id)
	details.UserID = kernel.ID(userID)
	details.ProductID = kernel.ID(productID)
	details.Status = order.Status(status)
	details.CreatedAt = details.CreatedAt.UTC()
	if confirmedAt.Valid {
		t := confirmedAt.Time.UTC()
		details.ConfirmedAt = &t
	}

	return details, nil
}
