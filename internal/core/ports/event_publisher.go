package ports

import (
	"context"
)

// OutboxMessage is a serialized domain event staged for publication.
// Messages are written to the outbox table in the same transaction as the
// aggregate change and drained by the relay job, so publication is
// at-least-once; consumers deduplicate by EventID.
type OutboxMessage struct {
	EventID     string
	EventName   string
	AggregateID string
	Payload     []byte
	OccurredAt  int64
}

// EventPublisher pushes staged domain events to the message broker.
type EventPublisher interface {
	// Publish sends a single message to the broker, keyed by aggregate
	// identifier so events of one aggregate stay ordered within a partition.
	Publish(ctx context.Context, message OutboxMessage) error

	// Close releases the underlying producer.
	Close() error
}
