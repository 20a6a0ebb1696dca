package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListOrdersByUserQueryHandler reads an owner's orders from the orders table.
type ListOrdersByUserQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersByUserQueryHandler(db *gorm.DB) ListOrdersByUserQueryHandler {
	return ListOrdersByUserQueryHandler{db: db}
}

func (h ListOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByUserQuery,
) (OrderListResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderListResponse{}, err
	}
	return listOrders(ctx, h.db, query.page, "user_id = ?", query.userID.Int64())
}

type ListOrdersByProductQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersByProductQueryHandler(db *gorm.DB) ListOrdersByProductQueryHandler {
	return ListOrdersByProductQueryHandler{db: db}
}

func (h ListOrdersByProductQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByProductQuery,
) (OrderListResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderListResponse{}, err
	}
	return listOrders(ctx, h.db, query.page, "product_id = ?", query.productID.Int64())
}

// ListOrdersByUserPeriodQueryHandler resolves the window against its clock on
// every call, so the same query object may be reused.
type ListOrdersByUserPeriodQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewListOrdersByUserPeriodQueryHandler creates the handler. A nil now falls
// back to time.Now.
func NewListOrdersByUserPeriodQueryHandler(db *gorm.DB, now func() time.Time) ListOrdersByUserPeriodQueryHandler {
	if now == nil {
		now = time.Now
	}
	return ListOrdersByUserPeriodQueryHandler{db: db, now: now}
}

func (h ListOrdersByUserPeriodQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByUserPeriodQuery,
) (OrderListResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderListResponse{}, err
	}

	now := h.now().UTC()
	since, bounded := query.period.Since(now)
	if !bounded {
		return listOrders(ctx, h.db, query.page, "user_id = ?", query.userID.Int64())
	}

	return listOrders(ctx, h.db, query.page,
		"user_id = ? AND created_at BETWEEN ? AND ?",
		query.userID.Int64(), since, now,
	)
}

type ListOrdersByUserStatusQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersByUserStatusQueryHandler(db *gorm.DB) ListOrdersByUserStatusQueryHandler {
	return ListOrdersByUserStatusQueryHandler{db: db}
}

func (h ListOrdersByUserStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByUserStatusQuery,
) (OrderListResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderListResponse{}, err
	}
	return listOrders(ctx, h.db, query.page,
		"user_id = ? AND status = ?",
		query.userID.Int64(), int(query.status),
	)
}
