package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

type orderLoader func(ctx context.Context, repo ports.OrderRepository) (*order.Order, error)

// ownedOrder loads an order on behalf of actor. Orders of other users are not found.
func ownedOrder(orderID, actor kernel.ID) orderLoader {
	return func(ctx context.Context, repo ports.OrderRepository) (*order.Order, error) {
		o, err := repo.GetOwned(ctx, orderID, actor)
		if err != nil {
			return nil, err
		}
		if err = services.NewOwnershipGuard().Check(orderID, o, actor); err != nil {
			return nil, err
		}
		return o, nil
	}
}

// anyOrder loads an order from administrative scope.
func anyOrder(orderID kernel.ID) orderLoader {
	return func(ctx context.Context, repo ports.OrderRepository) (*order.Order, error) {
		return repo.Get(ctx, orderID)
	}
}

// mutateOrder reads the current state inside a transaction, applies mutate and
// writes the result back. The status guard always sees the freshly loaded row.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	load orderLoader,
	mutate func(o *order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := load(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	if err = mutate(o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func clockOrDefault(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
