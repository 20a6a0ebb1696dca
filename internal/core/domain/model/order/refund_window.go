package order

import (
	"errors"
	"time"
)

var ErrRefundWindowClosed = errors.New("refund window is closed")

// RefundWindow decides whether a refund may still be requested, given the
// time elapsed since the purchase was confirmed. It is only consulted for
// orders that were confirmed at some point.
type RefundWindow func(sinceConfirmation time.Duration) bool

// AnyRefundWindow never closes.
func AnyRefundWindow(time.Duration) bool {
	return true
}

// RefundWindowOf closes the window once limit has elapsed. A non-positive
// limit returns AnyRefundWindow.
func RefundWindowOf(limit time.Duration) RefundWindow {
	if limit <= 0 {
		return AnyRefundWindow
	}
	return func(sinceConfirmation time.Duration) bool {
		return sinceConfirmation <= limit
	}
}
