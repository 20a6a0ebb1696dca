package postgres_test

import (
	"strings"
	"testing"
	"time"

	postgres_adapter "orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

type orderUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	product, err := order.NewProductSnapshot(42, "Widget", 1000)
	require.NoError(t, err)
	delivery, err := order.NewDelivery("Kim", "010-1234-5678", "Home", "1 Main St", "04524", "")
	require.NoError(t, err)
	o, err := order.NewOrder(7, product, 2, delivery, testNow)
	require.NoError(t, err)
	return o
}

// openSQLite returns a migrated in-memory database private to the test.
func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := postgres_adapter.OpenSQLite("file:"+name+"?mode=memory&cache=shared", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(db))
	t.Cleanup(func() {
		sqlDB, dbErr := db.DB()
		if dbErr == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
