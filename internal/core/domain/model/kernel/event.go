package kernel

import (
	"time"
)

// DomainEvent is an immutable record of a state change inside an aggregate.
// Events are produced by aggregate roots during mutating operations and
// consumed by external collaborators after the aggregate has been persisted.
//
// Each aggregate package defines its own closed set of concrete event types;
// consumers dispatch with a type switch over that set rather than a
// string-keyed registry, so the compiler can check exhaustiveness.
type DomainEvent interface {
	// EventID returns the generated unique identifier of this event occurrence.
	// Downstream consumers deduplicate by this ID, since delivery through the
	// outbox is at-least-once.
	EventID() UUID

	// EventName returns the discriminating kind tag, e.g. "order.confirmed".
	EventName() string

	// OccurredAt returns the time the event was raised.
	OccurredAt() time.Time

	// AggregateID returns the identifier of the aggregate that raised the event.
	AggregateID() UUID
}

// EventMeta carries the data common to all domain events: a generated event
// identifier, the occurrence timestamp, and the raising aggregate's identifier.
// Concrete event types embed EventMeta and add their payload fields.
type EventMeta struct {
	eventID     UUID
	occurredAt  time.Time
	aggregateID UUID
}

// NewEventMeta creates event metadata for an event raised by the given
// aggregate, stamping it with a fresh event ID and the current time.
func NewEventMeta(aggregateID UUID) EventMeta {
	return EventMeta{
		eventID:     NewUUID(),
		occurredAt:  time.Now(),
		aggregateID: aggregateID,
	}
}

// RestoreEventMeta reconstructs event metadata from persisted values.
// Used by the outbox adapter when rehydrating events.
func RestoreEventMeta(eventID UUID, occurredAt time.Time, aggregateID UUID) EventMeta {
	return EventMeta{
		eventID:     eventID,
		occurredAt:  occurredAt,
		aggregateID: aggregateID,
	}
}

// EventID returns the unique identifier of this event occurrence.
func (m EventMeta) EventID() UUID {
	return m.eventID
}

// OccurredAt returns the time the event was raised.
func (m EventMeta) OccurredAt() time.Time {
	return m.occurredAt
}

// AggregateID returns the identifier of the aggregate that raised the event.
func (m EventMeta) AggregateID() UUID {
	return m.aggregateID
}
