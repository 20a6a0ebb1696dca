package outboxrepo_test

import (
	"strings"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := postgres.OpenSQLite("file:"+name+"?mode=memory&cache=shared", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func storedOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	product, err := order.NewProductSnapshot(42, "Widget", 1000)
	require.NoError(t, err)
	delivery, err := order.NewDelivery("Kim", "010-1234-5678", "", "1 Main St", "04524", "")
	require.NoError(t, err)
	o, err := order.NewOrder(7, product, 1, delivery, testNow)
	require.NoError(t, err)
	require.NoError(t, o.AssignID(kernel.ID(id)))
	return o
}

func TestGormOutboxRepository_AppendFetchMarkSent(t *testing.T) {
	ctx := t.Context()
	repo := outboxrepo.NewGormOutboxRepository(openDB(t))

	first := storedOrder(t, 1)
	second := storedOrder(t, 2)
	require.NoError(t, second.ConfirmPurchase(testNow.Add(time.Minute)))
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	pending, err := repo.FetchPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "1", pending[0].Key)
	assert.Equal(t, "order.created", pending[0].Topic)
	assert.Equal(t, "2", pending[2].Key)
	assert.Equal(t, "order.status_changed", pending[2].Topic)
	assert.True(t, testNow.Add(time.Minute).Equal(pending[2].OccurredAt))
	assert.Contains(t, string(pending[2].Payload), `"to":"PURCHASE_CONFIRMED"`)

	limited, err := repo.FetchPending(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	require.NoError(t, repo.MarkSent(ctx, pending[0].ID, testNow))
	remaining, err := repo.FetchPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, pending[1].ID, remaining[0].ID)
}

func TestGormOutboxRepository_AppendWithoutEvents(t *testing.T) {
	ctx := t.Context()
	repo := outboxrepo.NewGormOutboxRepository(openDB(t))

	o := storedOrder(t, 1)
	o.ClearEvents()
	require.NoError(t, repo.Append(ctx, o))

	pending, err := repo.FetchPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
