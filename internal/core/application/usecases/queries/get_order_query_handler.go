package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/pgerr"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns every field of the order, or *errs.ObjectNotFoundError when
// it does not exist or belongs to another user.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}
	return getOrderDetails(ctx, h.db, query.orderID,
		"id = ? AND user_id = ?", query.orderID.Int64(), query.userID.Int64(),
	)
}

// GetOrderStatusQueryResponse carries the order id with its current status.
type GetOrderStatusQueryResponse struct {
	OrderID kernel.ID
	Status  order.Status
}

type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.orderID.Int64()).Rows()
	if err != nil {
		return GetOrderStatusQueryResponse{}, pgerr.Wrap("get order status", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderStatusQueryResponse{}, pgerr.Wrap("get order status", err)
		}
		return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("order", query.orderID)
	}

	var status int
	if err = rows.Scan(&status); err != nil {
		return GetOrderStatusQueryResponse{}, pgerr.Wrap("get order status", err)
	}

	return GetOrderStatusQueryResponse{OrderID: query.orderID, Status: order.Status(status)}, nil
}
