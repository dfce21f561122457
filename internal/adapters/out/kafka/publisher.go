// Package kafka publishes order status changes to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"takeout/internal/adapters/out/events"
	"takeout/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a synchronous producer to brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 100 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Net.DialTimeout = 10 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewPublisherWithProducer(producer, topic), nil
}

func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

// Publish sends all events in one batch keyed by order id, so the changes
// of one order stay ordered within its partition.
func (p *Publisher) Publish(_ context.Context, evts ...order.StatusChangedEvent) error {
	if len(evts) == 0 {
		return nil
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(evts))
	for _, e := range evts {
		key, body, err := events.Encode(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(key),
			Value: sarama.ByteEncoder(body),
			Headers: []sarama.RecordHeader{
				{Key: []byte("type"), Value: []byte(e.EventName())},
			},
		})
	}

	if err := p.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("send %d order events to %s: %w", len(msgs), p.topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
