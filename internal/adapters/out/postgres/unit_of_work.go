// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - One database transaction per lifecycle operation
//   - Orders read through the unit of work are locked until commit or rollback
//   - Domain events of every tracked order are written to the outbox in the
//     same transaction, so an event exists exactly when its change does
//   - Every transaction is bounded by an operation timeout
//
// Usage Patterns:
//
// Read-modify-write:
//
//	factory := NewGormUnitOfWorkFactory(db, 5*time.Second)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	repo := uow.OrderRepository()
//	o, err := repo.GetOwned(ctx, orderID, actor)
//	if err != nil {
//	    return err
//	}
//	if err := o.ConfirmPurchase(time.Now()); err != nil {
//	    return err
//	}
//	if err := repo.Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Two operations on the same order are serialized by the row lock; the
//     second one sees the committed result of the first
//   - Failures that are safe to retry surface as *errs.TransientError
package postgres

import (
	"context"
	"errors"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/pgerr"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A positive timeout bounds each transaction from Begin to Commit or Rollback;
// zero leaves the caller's deadline alone.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, 5*time.Second)
func NewGormUnitOfWorkFactory(db *gorm.DB, timeout time.Duration) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, timeout: timeout}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		timeout: f.timeout,
		tracked: make([]*order.Order, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the orders
// changed in it. On Commit the pending events of every tracked order are
// appended to the outbox before the transaction is committed.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	txCtx   context.Context
	timeout time.Duration
	cancel  context.CancelFunc
	tracked []*order.Order
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	txCtx, cancel := ctx, context.CancelFunc(func() {})
	if uow.timeout > 0 {
		txCtx, cancel = context.WithTimeout(ctx, uow.timeout)
	}

	tx := uow.db.WithContext(txCtx).Begin()
	if tx.Error != nil {
		cancel()
		return pgerr.Wrap("begin transaction", tx.Error)
	}

	uow.tx = tx
	uow.txCtx = txCtx
	uow.cancel = cancel
	return nil
}

// Commit writes the outbox entries of all tracked orders and commits.
// After commit, the transaction is closed and cannot be reused.
//
// Returns gorm.ErrInvalidTransaction if no active transaction exists.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	outbox := outboxrepo.NewGormOutboxRepository(uow.tx)
	for _, o := range uow.tracked {
		if err := outbox.Append(ctx, o); err != nil {
			return err
		}
	}

	err := uow.tx.Commit().Error
	if ctxErr := uow.txCtx.Err(); err != nil && ctxErr != nil {
		// an expired transaction is rolled back by database/sql and reports
		// sql.ErrTxDone; keep the deadline visible to the classifier
		err = errors.Join(err, ctxErr)
	}
	uow.finish()
	if err != nil {
		return pgerr.Wrap("commit transaction", err)
	}

	for _, o := range uow.tracked {
		o.ClearEvents()
	}
	uow.tracked = uow.tracked[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
// It is safe to defer right after Begin: once the transaction was committed
// it returns gorm.ErrInvalidTransaction and does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.finish()
	uow.tracked = uow.tracked[:0]
	return err
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// bounded by its deadline, otherwise they use the main database connection for
// immediate execution.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate registers an order as changed within this unit of work.
// Repository implementations call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(aggregate *order.Order) {
	for _, o := range uow.tracked {
		if o == aggregate {
			return
		}
	}
	uow.tracked = append(uow.tracked, aggregate)
}

func (uow *GormUnitOfWork) finish() {
	uow.tx = nil
	uow.txCtx = nil
	if uow.cancel != nil {
		uow.cancel()
		uow.cancel = nil
	}
}
