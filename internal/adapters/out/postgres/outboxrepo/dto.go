// Package outboxrepo stores domain events in the order_outbox table in the same
// transaction as the order change that produced them, and serves them to the
// relay job that publishes them.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// MessageDTO is one row of the order_outbox table.
type MessageDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EventID    string    `gorm:"type:varchar(36);not null;uniqueIndex"`
	Topic      string    `gorm:"not null"`
	Key        string    `gorm:"not null"`
	Payload    []byte    `gorm:"not null"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
	SentAt     *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "order_outbox"
}

// EventPayload is the JSON body published for every order event.
type EventPayload struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	ProductID  int64     `json:"product_id"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// fromEvents serializes the pending events of o. The order must already have
// its store id.
func fromEvents(o *order.Order) ([]MessageDTO, error) {
	events := o.Events()
	messages := make([]MessageDTO, 0, len(events))
	for _, e := range events {
		payload := EventPayload{
			EventID:    e.ID.String(),
			Type:       string(e.Type),
			OrderID:    o.ID().Int64(),
			UserID:     o.UserID().Int64(),
			ProductID:  o.Product().ProductID().Int64(),
			To:         e.To.String(),
			OccurredAt: e.OccurredAt.UTC(),
		}
		if e.From != order.Unknown {
			payload.From = e.From.String()
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s event: %w", e.Type, err)
		}

		messages = append(messages, MessageDTO{
			EventID:    payload.EventID,
			Topic:      payload.Type,
			Key:        o.ID().String(),
			Payload:    data,
			OccurredAt: payload.OccurredAt,
		})
	}
	return messages, nil
}

func toPort(dto MessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:         dto.ID,
		EventID:    dto.EventID,
		Topic:      dto.Topic,
		Key:        dto.Key,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt.UTC(),
	}
}
