package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

type EventType string

const (
	EventCreated         EventType = "order.created"
	EventStatusChanged   EventType = "order.status_changed"
	EventDeliveryChanged EventType = "order.delivery_changed"
)

// Event is a domain event recorded by the Order aggregate. The order id is not
// part of the event because a new order has none until the store assigns it;
// read it from the aggregate when the event is persisted.
type Event struct {
	ID         kernel.UUID
	Type       EventType
	From       Status
	To         Status
	OccurredAt time.Time
}

func newEvent(eventType EventType, from, to Status, at time.Time) Event {
	return Event{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		From:       from,
		To:         to,
		OccurredAt: at,
	}
}
