package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/pgerr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Reads lock the selected row FOR UPDATE, which only has an effect inside a
// transaction; dialects without row locks ignore the clause. Updates are
// conditional on the version the order was loaded with, so a lost update is
// reported even where no row lock is available.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate *order.Order)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order and assigns the generated id to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.conn(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("insert order", err)
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the mutable columns of an existing order and bumps its version.
// Returns *errs.VersionIsInvalidError when the row changed since it was read.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.conn(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return pgerr.Wrap("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("order " + aggregate.ID().String())
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, id, "id = ?", id.Int64())
}

// GetOwned retrieves an order by ID if userID owns it. Foreign orders are not found.
func (r *GormOrderRepository) GetOwned(ctx context.Context, id kernel.ID, userID kernel.ID) (*order.Order, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	return r.first(ctx, id, "id = ? AND user_id = ?", id.Int64(), userID.Int64())
}

func (r *GormOrderRepository) first(ctx context.Context, id kernel.ID, query string, args ...any) (*order.Order, error) {
	var dto OrderDTO
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, pgerr.Wrap("select order", err)
	}

	return toDomain(dto)
}

// conn returns the transaction handle untouched, so statements keep the
// deadline the transaction was opened with. Outside a transaction ctx applies.
func (r *GormOrderRepository) conn(ctx context.Context) *gorm.DB {
	if _, ok := r.db.Statement.ConnPool.(gorm.TxCommitter); ok {
		return r.db
	}
	return r.db.WithContext(ctx)
}
