package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersByUserQueryIsNotConstructed = errors.New(
		"ListOrdersByUserQuery must be created via NewListOrdersByUserQuery constructor",
	)
	ErrListOrdersByProductQueryIsNotConstructed = errors.New(
		"ListOrdersByProductQuery must be created via NewListOrdersByProductQuery constructor",
	)
	ErrListOrdersByUserPeriodQueryIsNotConstructed = errors.New(
		"ListOrdersByUserPeriodQuery must be created via NewListOrdersByUserPeriodQuery constructor",
	)
	ErrListOrdersByUserStatusQueryIsNotConstructed = errors.New(
		"ListOrdersByUserStatusQuery must be created via NewListOrdersByUserStatusQuery constructor",
	)
)

// ListOrdersByUserQuery lists every order of one owner, newest first.
//
// Example:
//
//	query, err := queries.NewListOrdersByUserQuery(userID, queries.Page{})
//	if err != nil {
//	    return err
//	}
//	list, err := handler.Handle(ctx, query)
type ListOrdersByUserQuery struct {
	userID kernel.ID
	page   Page

	guard guard.ConstructorGuard
}

func NewListOrdersByUserQuery(userID kernel.ID, page Page) (ListOrdersByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListOrdersByUserQuery{}, err
	}
	return ListOrdersByUserQuery{userID: userID, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByUserQueryIsNotConstructed)
}

func (q ListOrdersByUserQuery) UserID() kernel.ID {
	return q.userID
}

// ListOrdersByProductQuery lists every order placed for a product regardless
// of owner. It is an administrative view.
type ListOrdersByProductQuery struct {
	productID kernel.ID
	page      Page

	guard guard.ConstructorGuard
}

func NewListOrdersByProductQuery(productID kernel.ID, page Page) (ListOrdersByProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return ListOrdersByProductQuery{}, err
	}
	return ListOrdersByProductQuery{productID: productID, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersByProductQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByProductQueryIsNotConstructed)
}

func (q ListOrdersByProductQuery) ProductID() kernel.ID {
	return q.productID
}

// ListOrdersByUserPeriodQuery lists the owner's orders created within a
// relative window ending now. The window is parsed leniently, see ParsePeriod.
type ListOrdersByUserPeriodQuery struct {
	userID kernel.ID
	period Period
	page   Page

	guard guard.ConstructorGuard
}

func NewListOrdersByUserPeriodQuery(userID kernel.ID, period string, page Page) (ListOrdersByUserPeriodQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListOrdersByUserPeriodQuery{}, err
	}
	return ListOrdersByUserPeriodQuery{
		userID: userID,
		period: ParsePeriod(period),
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersByUserPeriodQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByUserPeriodQueryIsNotConstructed)
}

func (q ListOrdersByUserPeriodQuery) UserID() kernel.ID {
	return q.userID
}

func (q ListOrdersByUserPeriodQuery) Period() Period {
	return q.period
}

// ListOrdersByUserStatusQuery lists the owner's orders with exactly one status.
type ListOrdersByUserStatusQuery struct {
	userID kernel.ID
	status order.Status
	page   Page

	guard guard.ConstructorGuard
}

func NewListOrdersByUserStatusQuery(userID kernel.ID, status order.Status, page Page) (ListOrdersByUserStatusQuery, error) {
	if err := errors.Join(userID.Validate(), status.Validate()); err != nil {
		return ListOrdersByUserStatusQuery{}, err
	}
	return ListOrdersByUserStatusQuery{
		userID: userID,
		status: status,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersByUserStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByUserStatusQueryIsNotConstructed)
}

func (q ListOrdersByUserStatusQuery) UserID() kernel.ID {
	return q.userID
}

func (q ListOrdersByUserStatusQuery) Status() order.Status {
	return q.status
}
