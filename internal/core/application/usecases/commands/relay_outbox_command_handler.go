package commands

import (
	"context"
	"fmt"
	"time"

	"orders/internal/core/ports"
)

// RelayOutboxCommandHandler moves committed order events from the outbox to
// the broker. Delivery is at least once: a message is marked sent only after
// the broker accepted it, and a crash in between publishes it again.
type RelayOutboxCommandHandler struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	now       func() time.Time
}

func NewRelayOutboxCommandHandler(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	now func() time.Time,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		outbox:    outbox,
		publisher: publisher,
		now:       clockOrDefault(now),
	}
}

// Handle returns the number of messages published. It stops at the first
// publish failure so that later events of the same order are not sent ahead
// of the failed one.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	pending, err := h.outbox.FetchPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, fmt.Errorf("fetch pending outbox messages: %w", err)
	}

	published := 0
	for _, msg := range pending {
		if err = h.publisher.Publish(ctx, msg); err != nil {
			return published, err
		}
		if err = h.outbox.MarkSent(ctx, msg.ID, h.now().UTC()); err != nil {
			return published, fmt.Errorf("mark outbox message %d sent: %w", msg.ID, err)
		}
		published++
	}

	return published, nil
}
