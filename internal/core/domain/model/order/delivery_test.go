package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("should trim and keep all fields", func(t *testing.T) {
		d, err := order.NewDelivery(" Kim ", "010-1234-5678", "Office", "2 Side St", "04524", " ring twice ")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "Kim", d.Receiver())
		assert.Equal(t, "010-1234-5678", d.ReceiverPhoneNumber())
		assert.Equal(t, "Office", d.Name())
		assert.Equal(t, "2 Side St", d.Address())
		assert.Equal(t, "04524", d.PostCode())
		assert.Equal(t, "ring twice", d.Request())
	})

	t.Run("should allow empty name and request", func(t *testing.T) {
		_, err := order.NewDelivery("Kim", "010", "", "2 Side St", "04524", "")

		require.NoError(t, err)
	})

	t.Run("should require receiver, phone, address and post code", func(t *testing.T) {
		_, err := order.NewDelivery(" ", "", "Home", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"receiver", "receiver_phone_number", "delivery_address", "post_code"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, order.Delivery{}.Validate(), order.ErrDeliveryIsNotConstructed)
	})
}

func TestNewProductSnapshot(t *testing.T) {
	t.Run("should accept zero price", func(t *testing.T) {
		s, err := order.NewProductSnapshot(1, "Sticker", 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), s.Price())
	})

	t.Run("should reject negative price, empty name and missing id", func(t *testing.T) {
		_, err := order.NewProductSnapshot(0, "", -5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRefundWindowOf(t *testing.T) {
	window := order.RefundWindowOf(0)
	assert.True(t, window(365*24*time.Hour))

	week := order.RefundWindowOf(7 * 24 * time.Hour)
	assert.True(t, week(0))
	assert.True(t, week(7*24*time.Hour))
	assert.False(t, week(8*24*time.Hour))
}
