package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
)

// AddOrderItemCommand represents a request to add a product line to an order,
// or to top up the quantity when the product is already present.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	unitPrice kernel.Money
	quantity  kernel.Quantity

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add a product line to an order.
// The price is given in minor units of the currency.
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	productID kernel.UUID,
	priceAmount int64,
	priceCurrency string,
	quantity int,
) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setUnitPrice(priceAmount, priceCurrency),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product to add.
func (c AddOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// UnitPrice returns the per-unit price of the product.
func (c AddOrderItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// Quantity returns the number of units to add.
func (c AddOrderItemCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setUnitPrice(amount int64, currency string) error {
	unitPrice, err := kernel.NewMoney(amount, currency)
	if err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *AddOrderItemCommand) setQuantity(value int) error {
	quantity, err := kernel.NewQuantity(value)
	if err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}
