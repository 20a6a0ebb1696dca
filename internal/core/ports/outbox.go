package ports

import (
	"context"
	"time"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	ID         int64
	EventID    string
	Topic      string
	Key        string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxRepository reads and acknowledges outbox messages written by the unit of work.
type OutboxRepository interface {
	// FetchPending returns up to limit unsent messages in insertion order.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent records that the message with id was published.
	MarkSent(ctx context.Context, id int64, sentAt time.Time) error
}

// EventPublisher delivers outbox messages to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
	Close() error
}
