package services

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// OwnershipGuard is a domain service that decides whether an acting user may
// see or change an order.
//
// Business rules:
//   - Only the owner passes
//   - A foreign order is reported as *errs.ObjectNotFoundError, exactly like a
//     missing one, so callers cannot probe which order ids exist
//   - Administrative operations do not use the guard
//
// Example usage:
//
//	o, err := repo.GetOwned(ctx, orderID, actorID)
//	if err != nil {
//	    return err
//	}
//	if err := services.NewOwnershipGuard().Check(orderID, o, actorID); err != nil {
//	    return err
//	}
type OwnershipGuard struct{}

// NewOwnershipGuard creates a new OwnershipGuard instance.
func NewOwnershipGuard() OwnershipGuard {
	return OwnershipGuard{}
}

// Check returns nil when actor owns o. A nil order, an unconstructed order and
// an order owned by someone else all produce the same not found error for requestedID.
func (OwnershipGuard) Check(requestedID kernel.ID, o *order.Order, actor kernel.ID) error {
	if o.Validate() != nil || !o.IsOwnedBy(actor) || !o.ID().IsEqual(requestedID) {
		return errs.NewObjectNotFoundError("order", requestedID)
	}
	return nil
}
