package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"orders/internal/core/ports"

	amqp "github.com/streadway/amqp"
)

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// RabbitMQPublisher publishes to a durable topic exchange. The routing key is
// the event type, so consumers can bind to "order.#" or a single event.
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string

	mu sync.Mutex
}

var _ ports.EventPublisher = (*RabbitMQPublisher)(nil)

func NewRabbitMQPublisher(cfg RabbitMQConfig) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &RabbitMQPublisher{conn: conn, channel: ch, exchange: cfg.Exchange}, nil
}

// Publish sends msg to the exchange. The amqp client has no context support;
// a cancelled ctx is checked before the write only.
func (p *RabbitMQPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.channel.Publish(
		p.exchange,
		msg.Topic,
		false, // mandatory
		false, // immediate
		amqpPublishing(msg),
	)
	if err != nil {
		return fmt.Errorf("rabbitmq publish %s: %w", msg.EventID, err)
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

func amqpPublishing(msg ports.OutboxMessage) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.EventID,
		Type:         msg.Topic,
		Timestamp:    msg.OccurredAt.UTC(),
		Headers: amqp.Table{
			"order-id": msg.Key,
		},
		Body: msg.Payload,
	}
}
