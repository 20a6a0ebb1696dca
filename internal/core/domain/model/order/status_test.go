package order_test

import (
	"fmt"
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.PaymentPending))
		assert.Equal(t, 2, int(order.PaymentComplete))
		assert.Equal(t, 3, int(order.PurchaseConfirmed))
		assert.Equal(t, 4, int(order.RefundRequested))
		assert.Equal(t, 5, int(order.RefundComplete))
	})

	t.Run("should list valid statuses in lifecycle order", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.PaymentPending,
			order.PaymentComplete,
			order.PurchaseConfirmed,
			order.RefundRequested,
			order.RefundComplete,
		}, order.Statuses())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range order.Statuses() {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status            order.Status
		expected string
	}{
		{order.PaymentPending, "PAYMENT_PENDING"},
		{order.PaymentComplete, "PAYMENT_COMPLETE"},
		{order.PurchaseConfirmed, "PURCHASE_CONFIRMED"},
		{order.RefundRequested, "REFUND_REQUESTED"},
		{order.RefundComplete, "REFUND_COMPLETE"},
		{order.Unknown, "UNKNOWN"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every valid status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should tolerate surrounding whitespace", func(t *testing.T) {
		parsed, err := order.ParseStatus("  REFUND_REQUESTED ")

		require.NoError(t, err)
		assert.Equal(t, order.RefundRequested, parsed)
	})

	t.Run("should reject unknown literals", func(t *testing.T) {
		for _, literal := range []string{"", "UNKNOWN", "shipped", "payment_pending", "입금대기"} {
			_, err := order.ParseStatus(literal)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, literal)
		}
	})
}

func TestStatus_Guards(t *testing.T) {
	tests := []struct {
		status            order.Status
		adminOverwrite    bool
		deliveryChange    bool
		confirm           bool
		requestRefund     bool
		completeRefund    bool
		insideRefundTrack bool
	}{
		{order.PaymentPending, true, true, true, true, false, false},
		{order.PaymentComplete, true, true, true, true, false, false},
		{order.PurchaseConfirmed, true, false, true, false, false, false},
		{order.RefundRequested, false, false, false, false, true, true},
		{order.RefundComplete, false, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.insideRefundTrack, tt.status.IsRefundTrack())
			assert.Equal(t, tt.adminOverwrite, tt.status.ValidateAdminOverwrite() == nil)
			assert.Equal(t, tt.deliveryChange, tt.status.ValidateDeliveryChange() == nil)

			next, err := tt.status.Confirm()
			if tt.confirm {
				require.NoError(t, err)
				assert.Equal(t, order.PurchaseConfirmed, next)
			} else {
				require.Error(t, err)
				assert.Equal(t, order.Unknown, next)
			}

			next, err = tt.status.RequestRefund()
			if tt.requestRefund {
				require.NoError(t, err)
				assert.Equal(t, order.RefundRequested, next)
			} else {
				require.Error(t, err)
			}

			next, err = tt.status.CompleteRefund(order.RefundComplete)
			if tt.completeRefund {
				require.NoError(t, err)
				assert.Equal(t, order.RefundComplete, next)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestStatus_CompleteRefund(t *testing.T) {
	t.Run("should apply the target verbatim", func(t *testing.T) {
		next, err := order.RefundRequested.CompleteRefund(order.PaymentComplete)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentComplete, next)
	})

	t.Run("should reject an invalid target", func(t *testing.T) {
		_, err := order.RefundRequested.CompleteRefund(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
