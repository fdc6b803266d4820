package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
	ErrTrackingRefIsRequired = errors.New("tracking reference is required")
)

// ShipOrderCommand represents a request to hand a confirmed order to the
// carrier, recording the carrier tracking reference.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	trackingRef string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order.
func NewShipOrderCommand(orderID kernel.UUID, trackingRef string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTrackingRef(trackingRef),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingRef returns the carrier tracking reference.
func (c ShipOrderCommand) TrackingRef() string {
	return c.trackingRef
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setTrackingRef(trackingRef string) error {
	if trackingRef == "" {
		return ErrTrackingRefIsRequired
	}

	c.trackingRef = trackingRef
	return nil
}
