package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDIsAlreadyAssigned is returned when the store tries to assign an identity twice.
	ErrOrderIDIsAlreadyAssigned = errors.New("order id is already assigned")
)

// Operation names used in transition errors.
const (
	opAdminOverwrite = "overwrite status of"
	opChangeDelivery = "update delivery address of"
	opConfirm        = "confirm purchase of"
	opRequestRefund  = "request refund for"
	opCompleteRefund = "complete refund for"
)

// Order is the aggregate root of the order lifecycle. It tracks a purchase from
// creation through payment, delivery changes, buyer confirmation and refunds.
//
// Order follows these invariants:
//   - Exactly one owner and one product, fixed at creation
//   - Product name and price are a snapshot taken at creation and never change
//   - Quantity is positive and never changes
//   - Status only changes through the transition methods below
//   - Delivery is editable only in PaymentPending and PaymentComplete
//
// Every transition method checks the current status first and mutates nothing
// when the guard fails, so a rejected call leaves the order untouched.
type Order struct {
	// id is assigned by the store on insert; zero until then
	id kernel.ID

	// userID is the owner
	userID kernel.ID

	// product is the catalog snapshot
	product ProductSnapshot

	quantity int

	status Status

	delivery Delivery

	createdAt time.Time

	// confirmedAt is set the first time the purchase is confirmed
	confirmedAt *time.Time

	// version is the optimistic concurrency token of the stored row
	version int

	// events are pending domain events, drained by the unit of work on commit
	events []Event

	isConstructed bool
}

// NewOrder creates an order in PaymentPending status.
//
// Parameters:
//   - userID: the acting user who becomes the owner
//   - product: name and price resolved from the catalog right now
//   - quantity: number of items (must be positive)
//   - delivery: where the order is shipped
//   - createdAt: creation time, used for sorting and period queries
//
// Example:
//
//	snapshot, _ := order.NewProductSnapshot(42, "Widget", 1000)
//	delivery, _ := order.NewDelivery("Kim", "010-1234-5678", "Home", "1 Main St", "04524", "")
//	o, err := order.NewOrder(7, snapshot, 2, delivery, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	userID kernel.ID,
	product ProductSnapshot,
	quantity int,
	delivery Delivery,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        PaymentPending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setProduct(product),
		o.setQuantity(quantity),
		o.setDelivery(delivery),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.record(newEvent(EventCreated, Unknown, PaymentPending, createdAt))
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. It validates the same
// invariants as NewOrder plus the stored id, status and version, and records no events.
func RestoreOrder(
	id kernel.ID,
	userID kernel.ID,
	product ProductSnapshot,
	quantity int,
	delivery Delivery,
	status Status,
	createdAt time.Time,
	confirmedAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		confirmedAt:   confirmedAt,
		isConstructed: true,
	}

	var versionErr error
	if version <= 0 {
		versionErr = errs.NewValueIsOutOfRangeError("version", version, 1, math.MaxInt)
	}

	if err := errors.Join(
		id.Validate(),
		o.setUserID(userID),
		o.setProduct(product),
		o.setQuantity(quantity),
		o.setDelivery(delivery),
		status.Validate(),
		o.setCreatedAt(createdAt),
		versionErr,
	); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id.IsEqual(other.id)
}

// IsOwnedBy reports whether userID owns the order.
func (o *Order) IsOwnedBy(userID kernel.ID) bool {
	return o.userID.IsEqual(userID)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) UserID() kernel.ID {
	return o.userID
}

func (o *Order) Product() ProductSnapshot {
	return o.product
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Delivery() Delivery {
	return o.delivery
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns when the purchase was first confirmed, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// Version returns the optimistic concurrency token the order was loaded with.
func (o *Order) Version() int {
	return o.version
}

// Events returns a copy of the domain events recorded since the last ClearEvents.
func (o *Order) Events() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

// ClearEvents drops recorded events once they were stored in the outbox.
func (o *Order) ClearEvents() {
	o.events = nil
}

// AssignID stores the identity generated by the store on insert.
func (o *Order) AssignID(id kernel.ID) error {
	if o.id != 0 {
		return fmt.Errorf("%w: %s", ErrOrderIDIsAlreadyAssigned, o.id)
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// IncrementVersion is called by the repository after a successful conditional update.
func (o *Order) IncrementVersion() {
	o.version++
}

// SetStatusByAdmin replaces the status from administrative scope.
//
// Any valid target is accepted, but orders already inside the refund track
// are rejected with *errs.InvalidTransitionError: refunds only progress
// through RequestRefund and CompleteRefund.
func (o *Order) SetStatusByAdmin(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateAdminOverwrite(); err != nil {
		return o.transitionError(opAdminOverwrite, target, err)
	}

	o.moveTo(target, now)
	return nil
}

// ChangeDelivery overwrites all delivery fields while the order is still in
// PaymentPending or PaymentComplete.
func (o *Order) ChangeDelivery(delivery Delivery, now time.Time) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateDeliveryChange(); err != nil {
		return o.transitionError(opChangeDelivery, Unknown, err)
	}

	o.delivery = delivery
	o.record(newEvent(EventDeliveryChanged, o.status, o.status, now))
	return nil
}

// ConfirmPurchase moves the order to PurchaseConfirmed. Confirmation straight
// from PaymentPending is allowed.
func (o *Order) ConfirmPurchase(now time.Time) error {
	next, err := o.status.Confirm()
	if err != nil {
		return o.transitionError(opConfirm, PurchaseConfirmed, err)
	}

	o.moveTo(next, now)
	return nil
}

// RequestRefund moves the order to RefundRequested.
//
// When the order was confirmed at some point (and later moved back by an
// administrator), window decides whether the refund may still be requested.
// A nil window never closes.
func (o *Order) RequestRefund(now time.Time, window RefundWindow) error {
	next, err := o.status.RequestRefund()
	if err != nil {
		return o.transitionError(opRequestRefund, RefundRequested, err)
	}

	if window != nil && o.confirmedAt != nil && !window(now.Sub(*o.confirmedAt)) {
		return o.transitionError(opRequestRefund, RefundRequested, ErrRefundWindowClosed)
	}

	o.moveTo(next, now)
	return nil
}

// CompleteRefund moves a RefundRequested order to target, applied verbatim.
func (o *Order) CompleteRefund(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	next, err := o.status.CompleteRefund(target)
	if err != nil {
		return o.transitionError(opCompleteRefund, target, err)
	}

	o.moveTo(next, now)
	return nil
}

func (o *Order) moveTo(next Status, now time.Time) {
	prev := o.status
	o.status = next
	if next == PurchaseConfirmed && o.confirmedAt == nil {
		confirmedAt := now
		o.confirmedAt = &confirmedAt
	}
	o.record(newEvent(EventStatusChanged, prev, next, now))
}

func (o *Order) record(e Event) {
	o.events = append(o.events, e)
}

func (o *Order) transitionError(operation string, target Status, cause error) error {
	var targetName string
	if target != Unknown {
		targetName = target.String()
	}
	return errs.NewInvalidTransitionErrorWithCause(o.id, operation, o.status.String(), targetName, cause)
}

func (o *Order) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setProduct(product ProductSnapshot) error {
	if err := product.Validate(); err != nil {
		return err
	}
	o.product = product
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	o.createdAt = createdAt
	return nil
}
