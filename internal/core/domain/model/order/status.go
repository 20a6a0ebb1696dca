package order

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	                     (admin)
//	PaymentPending ───────────────> PaymentComplete
//	    │  │                           │  │
//	    │  └──── confirm ──────────────┼──┴──> PurchaseConfirmed
//	    │                              │
//	    └──── request refund ──────────┴─────> RefundRequested ──> RefundComplete
//
// Administrators may overwrite any status outside the refund track. Once an
// order is RefundRequested or RefundComplete only the refund operations move it.
// PurchaseConfirmed and RefundComplete are terminal in practice: no owner
// operation leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PaymentPending is the initial status of every new order.
	PaymentPending

	// PaymentComplete is set by an administrator once payment was received out of band.
	PaymentComplete

	// PurchaseConfirmed is set when the buyer confirms the purchase.
	PurchaseConfirmed

	// RefundRequested is set when the buyer asks for a refund.
	RefundRequested

	// RefundComplete closes the refund track.
	RefundComplete
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		PaymentPending:    "PAYMENT_PENDING",
		PaymentComplete:   "PAYMENT_COMPLETE",
		PurchaseConfirmed: "PURCHASE_CONFIRMED",
		RefundRequested:   "REFUND_REQUESTED",
		RefundComplete:    "REFUND_COMPLETE",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PaymentPending:    "PAYMENT_PENDING",
		PaymentComplete:   "PAYMENT_COMPLETE",
		PurchaseConfirmed: "PURCHASE_CONFIRMED",
		RefundRequested:   "REFUND_REQUESTED",
		RefundComplete:    "REFUND_COMPLETE",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{PaymentPending, PaymentComplete, PurchaseConfirmed, RefundRequested, RefundComplete}
}

// ParseStatus converts a wire literal such as "PAYMENT_COMPLETE" into a Status.
// Unknown literals, including "UNKNOWN", are rejected.
//
// Example:
//
//	target, err := order.ParseStatus(req.Status)
//	if err != nil {
//	    return err // errs.ValueIsInvalidError
//	}
func ParseStatus(s string) (Status, error) {
	literal := strings.TrimSpace(s)
	for status, str := range getValidStatusStrings() {
		if str == literal {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate checks if the Status value is one of the five lifecycle states.
//
// Returns:
//   - nil if the status is valid
//   - *errs.ValueIsInvalidError for Unknown and out-of-range values
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsRefundTrack reports whether the order already entered the refund workflow.
func (s Status) IsRefundTrack() bool {
	return s == RefundRequested || s == RefundComplete
}

// ValidateAdminOverwrite checks that an administrator may replace the status.
// Orders inside the refund track are only moved by the refund operations.
func (s Status) ValidateAdminOverwrite() error {
	if s.IsRefundTrack() {
		return fmt.Errorf("%s is inside the refund track", s.String())
	}
	return nil
}

// ValidateDeliveryChange checks that the delivery address is still editable.
//
// Editable statuses:
//   - PaymentPending
//   - PaymentComplete
//
// The address freezes as soon as confirmation or a refund has begun.
func (s Status) ValidateDeliveryChange() error {
	if s != PaymentPending && s != PaymentComplete {
		return fmt.Errorf("delivery is frozen in %s", s.String())
	}
	return nil
}

// Confirm transitions the status to PurchaseConfirmed.
//
// Valid transitions:
//   - PaymentPending -> PurchaseConfirmed
//   - PaymentComplete -> PurchaseConfirmed
//   - PurchaseConfirmed -> PurchaseConfirmed (repeated confirmation)
//
// Invalid transitions:
//   - RefundRequested, RefundComplete -> PurchaseConfirmed
func (s Status) Confirm() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsRefundTrack() {
		return Unknown, fmt.Errorf("%s is inside the refund track", s.String())
	}
	return PurchaseConfirmed, nil
}

// RequestRefund transitions the status to RefundRequested.
//
// Valid transitions:
//   - PaymentPending -> RefundRequested
//   - PaymentComplete -> RefundRequested
//
// Invalid transitions:
//   - PurchaseConfirmed -> RefundRequested (no refund after confirmation)
//   - RefundRequested -> RefundRequested (no double request)
//   - RefundComplete -> RefundRequested
func (s Status) RequestRefund() (Status, error) {
	if s != PaymentPending && s != PaymentComplete {
		return Unknown, fmt.Errorf("%s does not allow a refund request", s.String())
	}
	return RefundRequested, nil
}

// CompleteRefund moves a RefundRequested order to the caller supplied target,
// which in practice is RefundComplete.
func (s Status) CompleteRefund(target Status) (Status, error) {
	if s != RefundRequested {
		return Unknown, fmt.Errorf("%s has no pending refund request", s.String())
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	return target, nil
}
