// Package rabbitmq publishes order status changes to a topic exchange.
// Routing keys have the form "order.<status>", for example
// "order.delivering".
package rabbitmq

import (
	"context"
	"fmt"
	"strings"
	"time"

	"takeout/internal/adapters/out/events"
	"takeout/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
}

// Dial connects to url and declares a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange,
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
		return nil, err
	}

	p := newPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string) *Publisher {
	return &Publisher{channel: ch, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, evts ...order.StatusChangedEvent) error {
	for _, e := range evts {
		id, body, err := events.Encode(e)
		if err != nil {
			return err
		}

		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		err = p.channel.PublishWithContext(pubCtx,
			p.exchange,
			RoutingKey(e.To),
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				ContentType:  "application/json",
				MessageId:    id + ":" + e.To.String(),
				Type:         e.EventName(),
				Timestamp:    e.OccurredAt,
				Body:         body,
			})
		cancel()
		if err != nil {
			return fmt.Errorf("publish %s for order %s: %w", e.To, id, err)
		}
	}
	return nil
}

// RoutingKey returns the routing key for changes into status.
func RoutingKey(status order.Status) string {
	return "order." + strings.ToLower(status.String())
}

func (p *Publisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		if cErr := p.conn.Close(); err == nil {
			err = cErr
		}
	}
	return err
}
