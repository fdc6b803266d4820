package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when confirming an order with an empty
	// item list.
	ErrOrderHasNoItems = errors.New("order has no items")

	// ErrTrackingRefIsRequired is returned when shipping without a carrier
	// tracking reference.
	ErrTrackingRefIsRequired = errs.NewValueIsRequiredError("tracking reference")

	// ErrCancelReasonIsRequired is returned when cancelling without a reason.
	ErrCancelReasonIsRequired = errs.NewValueIsRequiredError("cancel reason")
)

// Order is the aggregate root for a customer's purchase. It manages the order
// lifecycle from draft through delivery and enforces every invariant for the
// object graph beneath it: all item mutations pass through root methods, and
// each successful mutation appends exactly one domain event to the pending
// buffer inherited from kernel.BaseAggregate.
//
// Order performs no I/O. Persistence and event publishing are driven by the
// orchestrating caller through the repository and outbox ports.
//
// Invariants:
//   - identifier, customer identifier, shipping address and currency are valid
//     from construction on
//   - item lines are unique per product; adding the same product merges quantities
//   - status transitions follow the state machine in Status
//   - a failed operation leaves state and event buffer unchanged
type Order struct {
	kernel.BaseAggregate

	// customerID references the owning customer aggregate by identifier only.
	customerID kernel.UUID

	// address is the shipping destination, required from creation.
	address kernel.Address

	// currency is the currency code every line total is accumulated in.
	currency string

	// items are the lines, owned exclusively by this root.
	items []Item

	// status is the current state in the order lifecycle.
	status Status

	// trackingRef is the carrier reference, set when the order ships.
	trackingRef string

	// cancelReason records why the order was cancelled, if it was.
	cancelReason string

	// createdAt is the creation timestamp.
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor.
	isConstructed bool
}

// NewOrder creates a new Order in Draft status and raises a CreatedEvent.
// This is the factory operation: the only way to bring a new order into
// existence in a valid initial state.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	address, _ := kernel.NewAddress("1 Main St", "Springfield")
//	o, err := order.NewOrder(orderID, customerID, address, "USD")
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address kernel.Address,
	currency string,
) (*Order, error) {
	o := &Order{
		status:        Draft,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	o.RaiseEvent(NewCreatedEvent(id, customerID))
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. No event is raised and
// the pending buffer starts empty. The persisted version feeds the
// optimistic-concurrency check on the next save.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address kernel.Address,
	currency string,
	status Status,
	items []Item,
	trackingRef string,
	cancelReason string,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setCurrency(currency),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	o.BaseAggregate = kernel.RestoreBaseAggregate(id, version)
	o.status = status
	o.items = append([]Item(nil), items...)
	o.trackingRef = trackingRef
	o.cancelReason = cancelReason
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.ID().IsEqual(other.ID())
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Address returns the shipping destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Currency returns the currency code order totals are computed in.
func (o *Order) Currency() string {
	return o.currency
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TrackingRef returns the carrier tracking reference, empty until shipped.
func (o *Order) TrackingRef() string {
	return o.trackingRef
}

// CancelReason returns the cancellation reason, empty unless cancelled.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a snapshot of the order lines. The returned slice is a copy;
// mutating it does not affect the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total computes the order total: the sum of every line's unit price times
// quantity, accumulated with Money's validated addition. A currency mismatch
// across lines therefore surfaces as a hard failure rather than being silently
// summed. An order with no lines totals to the additive identity of the
// order's currency.
func (o *Order) Total() (kernel.Money, error) {
	total, err := kernel.Zero(o.currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.items {
		line, lineErr := item.LineTotal()
		if lineErr != nil {
			return kernel.Money{}, lineErr
		}

		total, err = total.Add(line)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// AddItem adds a product line to the order, or merges the quantity into the
// existing line when the product is already present. A merge requires the
// same unit price as the existing line; a differing price is rejected.
// Allowed while the order is in Draft or Confirmed status. Raises an
// ItemAddedEvent carrying the added quantity.
func (o *Order) AddItem(productID kernel.UUID, unitPrice kernel.Money, quantity kernel.Quantity) error {
	if err := o.status.ValidateModifyItems(); err != nil {
		return err
	}
	if err := errors.Join(productID.Validate(), unitPrice.Validate(), quantity.Validate()); err != nil {
		return err
	}

	if idx := o.findItemByProduct(productID); idx >= 0 {
		samePrice, err := o.items[idx].UnitPrice().IsEqual(unitPrice)
		if err != nil {
			return err
		}
		if !samePrice {
			return errs.NewValueIsInvalidErrorWithCause("unitPrice",
				fmt.Errorf("product %s is already priced at %s", productID, o.items[idx].UnitPrice()))
		}
		if err := o.items[idx].mergeQuantity(quantity); err != nil {
			return err
		}
	} else {
		item, err := NewItem(kernel.NewUUID(), productID, unitPrice, quantity)
		if err != nil {
			return err
		}
		o.items = append(o.items, item)
	}

	o.RaiseEvent(NewItemAddedEvent(o.ID(), productID, quantity))
	return nil
}

// RemoveItem removes the line with the given identifier.
// Allowed while the order is in Draft or Confirmed status. Raises an
// ItemRemovedEvent.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.status.ValidateModifyItems(); err != nil {
		return err
	}
	if err := itemID.Validate(); err != nil {
		return err
	}

	idx := o.findItemByID(itemID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("orderItem", itemID.String())
	}

	removed := o.items[idx]
	o.items = append(o.items[:idx], o.items[idx+1:]...)

	o.RaiseEvent(NewItemRemovedEvent(o.ID(), removed.ID(), removed.ProductID()))
	return nil
}

// Confirm transitions the order from Draft to Confirmed.
// The order must have at least one line and a valid shipping address.
// The total is computed before the transition, so a currency mismatch across
// lines fails the operation and leaves state and event buffer untouched.
// Raises a ConfirmedEvent carrying the total.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}
	if err = o.address.Validate(); err != nil {
		return err
	}

	total, err := o.Total()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.RaiseEvent(NewConfirmedEvent(o.ID(), total))
	return nil
}

// Ship transitions the order from Confirmed to Shipped, recording the carrier
// tracking reference. Raises a ShippedEvent.
func (o *Order) Ship(trackingRef string) error {
	if trackingRef == "" {
		return ErrTrackingRefIsRequired
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.trackingRef = trackingRef
	o.RaiseEvent(NewShippedEvent(o.ID(), trackingRef))
	return nil
}

// MarkDelivered transitions the order from Shipped to Delivered, the terminal
// success state. Raises a DeliveredEvent.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.RaiseEvent(NewDeliveredEvent(o.ID()))
	return nil
}

// Cancel transitions the order to Cancelled, recording the reason.
// Only Draft and Confirmed orders can be cancelled; deletion is never
// physical inside the domain, it is this status transition. Raises a
// CancelledEvent.
func (o *Order) Cancel(reason string) error {
	if reason == "" {
		return ErrCancelReasonIsRequired
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	o.RaiseEvent(NewCancelledEvent(o.ID(), reason))
	return nil
}

func (o *Order) findItemByProduct(productID kernel.UUID) int {
	for i, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			return i
		}
	}
	return -1
}

func (o *Order) findItemByID(itemID kernel.UUID) int {
	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return i
		}
	}
	return -1
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.BaseAggregate = kernel.NewBaseAggregate(id)
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setCurrency(currency string) error {
	// Money's constructor owns the currency grammar; check it with a zero amount.
	if _, err := kernel.Zero(currency); err != nil {
		return err
	}
	o.currency = currency
	return nil
}
