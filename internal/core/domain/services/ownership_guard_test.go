package services_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipGuard_Check(t *testing.T) {
	snapshot, _ := order.NewProductSnapshot(42, "Widget", 1000)
	delivery, _ := order.NewDelivery("Kim", "010-1234-5678", "Home", "1 Main St", "04524", "")
	owned, err := order.RestoreOrder(5, 7, snapshot, 1, delivery, order.PaymentPending, time.Now(), nil, 1)
	require.NoError(t, err)

	guard := services.NewOwnershipGuard()

	t.Run("should pass the owner", func(t *testing.T) {
		require.NoError(t, guard.Check(5, owned, 7))
	})

	tests := []struct {
		name      string
		requested kernel.ID
		order     *order.Order
		actor     kernel.ID
	}{
		{name: "foreign order", requested: 5, order: owned, actor: 8},
		{name: "missing order", requested: 5, order: nil, actor: 7},
		{name: "different id", requested: 6, order: owned, actor: 7},
		{name: "unconstructed order", requested: 5, order: &order.Order{}, actor: 7},
	}

	for _, tt := range tests {
		t.Run("should hide "+tt.name, func(t *testing.T) {
			err := guard.Check(tt.requested, tt.order, tt.actor)

			var notFound *errs.ObjectNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.requested, notFound.ID)
		})
	}
}
