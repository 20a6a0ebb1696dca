package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
)

// GetOrderQuery reads one order on behalf of its owner. An order owned by
// someone else is reported as not found.
type GetOrderQuery struct {
	orderID kernel.ID
	userID  kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID, userID kernel.ID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

func (q GetOrderQuery) UserID() kernel.ID {
	return q.userID
}

// GetOrderStatusQuery reads the current status of any order. Administrative scope.
type GetOrderStatusQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderStatusQuery(orderID kernel.ID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}
	return GetOrderStatusQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) OrderID() kernel.ID {
	return q.orderID
}
