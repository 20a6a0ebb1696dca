// Package broker publishes outbox messages. Kafka and RabbitMQ carry them to
// other services; the log publisher is used when neither is configured.
package broker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"orders/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var ErrNoBrokers = errors.New("no kafka brokers configured")

const (
	headerEventID   = "event-id"
	headerEventType = "event-type"
)

type KafkaConfig struct {
	Brokers      string // comma separated
	Topic        string
	WriteTimeout time.Duration
}

// KafkaPublisher writes every order event to one topic, keyed by order id so
// that events of one order land on one partition in commit order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ ports.EventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	brokers := splitBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return nil, errors.New("kafka topic is required")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: cfg.WriteTimeout,
	}
	return &KafkaPublisher{writer: writer}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	if err := p.writer.WriteMessages(ctx, kafkaMessage(msg)); err != nil {
		return fmt.Errorf("kafka publish %s: %w", msg.EventID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func kafkaMessage(msg ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Time:  msg.OccurredAt.UTC(),
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(msg.EventID)},
			{Key: headerEventType, Value: []byte(msg.Topic)},
		},
	}
}

func splitBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
