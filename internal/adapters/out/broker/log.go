package broker

import (
	"context"
	"log/slog"

	"orders/internal/core/ports"
)

// LogPublisher writes outbox messages to the application log.
type LogPublisher struct {
	logger *slog.Logger
}

var _ ports.EventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "LogPublisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	p.logger.InfoContext(ctx, "order event",
		"event_id", msg.EventID,
		"type", msg.Topic,
		"order_id", msg.Key,
		"payload", string(msg.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
