package customer

import (
	"ordering/internal/core/domain/model/kernel"
)

// Event name tags for the customer aggregate.
const (
	RegisteredEventName = "customer.registered"
	UpdatedEventName    = "customer.updated"
)

// RegisteredEvent is raised when a customer profile is first created.
type RegisteredEvent struct {
	kernel.EventMeta
	name  string
	email kernel.Email
}

// NewRegisteredEvent creates a RegisteredEvent for the given customer.
func NewRegisteredEvent(customerID kernel.UUID, name string, email kernel.Email) RegisteredEvent {
	return RegisteredEvent{
		EventMeta: kernel.NewEventMeta(customerID),
		name:      name,
		email:     email,
	}
}

// EventName returns the discriminating event kind tag.
func (RegisteredEvent) EventName() string { return RegisteredEventName }

// Name returns the registered customer name.
func (e RegisteredEvent) Name() string { return e.name }

// Email returns the registered contact email.
func (e RegisteredEvent) Email() kernel.Email { return e.email }

// UpdatedEvent is raised when a customer profile changes.
type UpdatedEvent struct {
	kernel.EventMeta
	name  string
	email kernel.Email
}

// NewUpdatedEvent creates an UpdatedEvent carrying the new profile values.
func NewUpdatedEvent(customerID kernel.UUID, name string, email kernel.Email) UpdatedEvent {
	return UpdatedEvent{
		EventMeta: kernel.NewEventMeta(customerID),
		name:      name,
		email:     email,
	}
}

// EventName returns the discriminating event kind tag.
func (UpdatedEvent) EventName() string { return UpdatedEventName }

// Name returns the customer name after the update.
func (e UpdatedEvent) Name() string { return e.name }

// Email returns the contact email after the update.
func (e UpdatedEvent) Email() kernel.Email { return e.email }
