// Package outboxrepo implements the transactional outbox. Domain events are
// serialized into the outbox_events table in the same transaction as the
// aggregate change that raised them, then drained by the relay job.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EventStatus is the publication state of a staged event.
type EventStatus string

const (
	EventStatusPending    EventStatus = "PENDING"
	EventStatusProcessing EventStatus = "PROCESSING"
	EventStatusPublished  EventStatus = "PUBLISHED"
	EventStatusFailed     EventStatus = "FAILED"
)

// OutboxEventDTO represents one staged domain event row.
type OutboxEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID `gorm:"type:uuid;index"`
	EventName   string    `gorm:"size:100;index"`
	Payload     []byte    `gorm:"type:jsonb"`
	Status      string    `gorm:"size:20;default:PENDING;index"`
	RetryCount  int       `gorm:"default:0"`
	OccurredAt  time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for staged events.
func (OutboxEventDTO) TableName() string {
	return "outbox_events"
}

// fromDomainEvent serializes a domain event into a staged row. The event set
// is closed; an event type this switch does not know is a programming error
// surfaced at staging time, not on the consumer side.
func fromDomainEvent(event kernel.DomainEvent) (OutboxEventDTO, error) {
	payload, err := eventPayload(event)
	if err != nil {
		return OutboxEventDTO{}, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return OutboxEventDTO{}, err
	}

	return OutboxEventDTO{
		ID:          event.EventID().Bytes(),
		AggregateID: event.AggregateID().Bytes(),
		EventName:   event.EventName(),
		Payload:     raw,
		Status:      string(EventStatusPending),
		OccurredAt:  event.OccurredAt(),
	}, nil
}

func eventPayload(event kernel.DomainEvent) (map[string]any, error) {
	switch e := event.(type) {
	case order.CreatedEvent:
		return map[string]any{
			"customer_id": e.CustomerID().String(),
		}, nil
	case order.ItemAddedEvent:
		return map[string]any{
			"product_id": e.ProductID().String(),
			"quantity":   e.Quantity().Value(),
		}, nil
	case order.ItemRemovedEvent:
		return map[string]any{
			"item_id":    e.ItemID().String(),
			"product_id": e.ProductID().String(),
		}, nil
	case order.ConfirmedEvent:
		return map[string]any{
			"total_amount":   e.Total().Amount(),
			"total_currency": e.Total().Currency(),
		}, nil
	case order.ShippedEvent:
		return map[string]any{
			"tracking_ref": e.TrackingRef(),
		}, nil
	case order.DeliveredEvent:
		return map[string]any{}, nil
	case order.CancelledEvent:
		return map[string]any{
			"reason": e.Reason(),
		}, nil
	case customer.RegisteredEvent:
		return map[string]any{
			"name":  e.Name(),
			"email": e.Email().Address(),
		}, nil
	case customer.UpdatedEvent:
		return map[string]any{
			"name":  e.Name(),
			"email": e.Email().Address(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown domain event type %q", event.EventName())
	}
}
