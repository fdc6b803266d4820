// Package kafka publishes staged outbox events to a Kafka topic.
//
// The publisher is the downstream half of the outbox pipeline: the relay job
// reads PENDING events from the outbox table and hands them here one by one.
// Delivery is at-least-once; consumers deduplicate by the event_id header.
package kafka

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"ordering/internal/core/ports"

	"github.com/IBM/sarama"
)

// Publisher sends domain events to a single Kafka topic using a synchronous
// producer. Messages are keyed by aggregate ID so all events of one aggregate
// land on the same partition in order.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	closed   bool
	mu       sync.Mutex
}

// NewPublisher creates a Publisher connected to the given brokers.
// The producer is idempotent and waits for acknowledgement from all replicas.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}

	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Publisher{producer: producer, topic: topic}, nil
}

// NewProducerConfig returns the sarama configuration used by the publisher.
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	return config
}

// Publish sends a single outbox message and waits for broker acknowledgement.
func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return fmt.Errorf("kafka publisher is closed")
	}

	producerMessage := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(message.AggregateID),
		Value: sarama.ByteEncoder(message.Payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(message.EventID)},
			{Key: []byte("event_name"), Value: []byte(message.EventName)},
			{Key: []byte("occurred_at"), Value: []byte(strconv.FormatInt(message.OccurredAt, 10))},
		},
	}

	if _, _, err := p.producer.SendMessage(producerMessage); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", message.EventID, err)
	}

	return nil
}

// Close shuts down the underlying producer. Safe to call more than once.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.producer.Close()
}
