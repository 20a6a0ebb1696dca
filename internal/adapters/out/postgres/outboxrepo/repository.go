package outboxrepo

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/pgerr"

	"gorm.io/gorm"
)

var _ ports.OutboxRepository = (*GormOutboxRepository)(nil)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append stores the pending events of o. Called by the unit of work with the
// transaction handle, before commit.
func (r *GormOutboxRepository) Append(ctx context.Context, o *order.Order) error {
	messages, err := fromEvents(o)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	if err = r.conn(ctx).Create(&messages).Error; err != nil {
		return pgerr.Wrap("insert outbox messages", err)
	}
	return nil
}

// FetchPending returns up to limit unsent messages, oldest first.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.conn(ctx).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Wrap("select outbox messages", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toPort(dto))
	}
	return messages, nil
}

// MarkSent stamps the message as published.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	err := r.conn(ctx).
		Model(&MessageDTO{}).
		Where("id = ?", id).
		Update("sent_at", sentAt.UTC()).Error
	return pgerr.Wrap("mark outbox message sent", err)
}

// conn keeps the context of a transaction handle; the relay passes the plain
// connection pool and gets ctx applied.
func (r *GormOutboxRepository) conn(ctx context.Context) *gorm.DB {
	if _, ok := r.db.Statement.ConnPool.(gorm.TxCommitter); ok {
		return r.db
	}
	return r.db.WithContext(ctx)
}
