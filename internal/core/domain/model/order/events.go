package order

import (
	"ordering/internal/core/domain/model/kernel"
)

// Event name tags for the order aggregate. The concrete event types below form
// a closed set: consumers dispatch with a type switch rather than a
// string-keyed registry.
const (
	CreatedEventName     = "order.created"
	ItemAddedEventName   = "order.item_added"
	ItemRemovedEventName = "order.item_removed"
	ConfirmedEventName   = "order.confirmed"
	ShippedEventName     = "order.shipped"
	DeliveredEventName   = "order.delivered"
	CancelledEventName   = "order.cancelled"
)

// CreatedEvent is raised when an order enters the Draft state.
type CreatedEvent struct {
	kernel.EventMeta
	customerID kernel.UUID
}

// NewCreatedEvent creates a CreatedEvent for the given order.
func NewCreatedEvent(orderID kernel.UUID, customerID kernel.UUID) CreatedEvent {
	return CreatedEvent{
		EventMeta:  kernel.NewEventMeta(orderID),
		customerID: customerID,
	}
}

// EventName returns the discriminating event kind tag.
func (CreatedEvent) EventName() string { return CreatedEventName }

// CustomerID returns the identifier of the ordering customer.
func (e CreatedEvent) CustomerID() kernel.UUID { return e.customerID }

// ItemAddedEvent is raised when a line is added or merged on an order.
type ItemAddedEvent struct {
	kernel.EventMeta
	productID kernel.UUID
	quantity  kernel.Quantity
}

// NewItemAddedEvent creates an ItemAddedEvent carrying the added quantity.
func NewItemAddedEvent(orderID kernel.UUID, productID kernel.UUID, quantity kernel.Quantity) ItemAddedEvent {
	return ItemAddedEvent{
		EventMeta: kernel.NewEventMeta(orderID),
		productID: productID,
		quantity:  quantity,
	}
}

// EventName returns the discriminating event kind tag.
func (ItemAddedEvent) EventName() string { return ItemAddedEventName }

// ProductID returns the identifier of the added product.
func (e ItemAddedEvent) ProductID() kernel.UUID { return e.productID }

// Quantity returns the quantity that was added (not the merged line total).
func (e ItemAddedEvent) Quantity() kernel.Quantity { return e.quantity }

// ItemRemovedEvent is raised when a line is removed from an order.
type ItemRemovedEvent struct {
	kernel.EventMeta
	itemID    kernel.UUID
	productID kernel.UUID
}

// NewItemRemovedEvent creates an ItemRemovedEvent for the removed line.
func NewItemRemovedEvent(orderID kernel.UUID, itemID kernel.UUID, productID kernel.UUID) ItemRemovedEvent {
	return ItemRemovedEvent{
		EventMeta: kernel.NewEventMeta(orderID),
		itemID:    itemID,
		productID: productID,
	}
}

// EventName returns the discriminating event kind tag.
func (ItemRemovedEvent) EventName() string { return ItemRemovedEventName }

// ItemID returns the identifier of the removed line.
func (e ItemRemovedEvent) ItemID() kernel.UUID { return e.itemID }

// ProductID returns the identifier of the product on the removed line.
func (e ItemRemovedEvent) ProductID() kernel.UUID { return e.productID }

// ConfirmedEvent is raised when an order is confirmed, carrying the computed
// total at confirmation time.
type ConfirmedEvent struct {
	kernel.EventMeta
	total kernel.Money
}

// NewConfirmedEvent creates a ConfirmedEvent with the order total.
func NewConfirmedEvent(orderID kernel.UUID, total kernel.Money) ConfirmedEvent {
	return ConfirmedEvent{
		EventMeta: kernel.NewEventMeta(orderID),
		total:     total,
	}
}

// EventName returns the discriminating event kind tag.
func (ConfirmedEvent) EventName() string { return ConfirmedEventName }

// Total returns the order total snapshot taken at confirmation.
func (e ConfirmedEvent) Total() kernel.Money { return e.total }

// ShippedEvent is raised when an order leaves the warehouse.
type ShippedEvent struct {
	kernel.EventMeta
	trackingRef string
}

// NewShippedEvent creates a ShippedEvent carrying the carrier tracking reference.
func NewShippedEvent(orderID kernel.UUID, trackingRef string) ShippedEvent {
	return ShippedEvent{
		EventMeta:   kernel.NewEventMeta(orderID),
		trackingRef: trackingRef,
	}
}

// EventName returns the discriminating event kind tag.
func (ShippedEvent) EventName() string { return ShippedEventName }

// TrackingRef returns the carrier tracking reference.
func (e ShippedEvent) TrackingRef() string { return e.trackingRef }

// DeliveredEvent is raised when an order reaches its destination.
type DeliveredEvent struct {
	kernel.EventMeta
}

// NewDeliveredEvent creates a DeliveredEvent for the given order.
func NewDeliveredEvent(orderID kernel.UUID) DeliveredEvent {
	return DeliveredEvent{
		EventMeta: kernel.NewEventMeta(orderID),
	}
}

// EventName returns the discriminating event kind tag.
func (DeliveredEvent) EventName() string { return DeliveredEventName }

// CancelledEvent is raised when an order is cancelled before shipping.
type CancelledEvent struct {
	kernel.EventMeta
	reason string
}

// NewCancelledEvent creates a CancelledEvent carrying the cancellation reason.
func NewCancelledEvent(orderID kernel.UUID, reason string) CancelledEvent {
	return CancelledEvent{
		EventMeta: kernel.NewEventMeta(orderID),
		reason:    reason,
	}
}

// EventName returns the discriminating event kind tag.
func (CancelledEvent) EventName() string { return CancelledEventName }

// Reason returns the cancellation reason.
func (e CancelledEvent) Reason() string { return e.reason }
