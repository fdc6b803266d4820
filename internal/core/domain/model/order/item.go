package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem or RestoreItem constructors.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line on an order: a priced product reference and a quantity.
// Item is an entity owned exclusively by its Order; equality is by identifier
// only, regardless of attribute values. External callers never hold a mutable
// reference to an Item; the root hands out value snapshots.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	unitPrice kernel.Money
	quantity  kernel.Quantity

	isConstructed bool
}

// NewItem creates an order line for the given product.
// All parameters must be properly constructed value objects.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	unitPrice kernel.Money,
	quantity kernel.Quantity,
) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistence.
// Applies the same validation as NewItem.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	unitPrice kernel.Money,
	quantity kernel.Quantity,
) (Item, error) {
	return NewItem(id, productID, unitPrice, quantity)
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their identifiers.
// Items with the same ID are the same line even if attributes differ.
func (i Item) IsEqual(other Item) bool {
	return i.id.IsEqual(other.id)
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the referenced product aggregate.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the unit count on this line.
func (i Item) Quantity() kernel.Quantity {
	return i.quantity
}

// LineTotal returns unit price times quantity.
func (i Item) LineTotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return i.unitPrice.MultiplyScalar(i.quantity.Value())
}

// mergeQuantity folds an additional quantity into this line.
// Used by the root when the same product is added twice.
func (i *Item) mergeQuantity(additional kernel.Quantity) error {
	merged, err := i.quantity.Add(additional)
	if err != nil {
		return err
	}

	i.quantity = merged
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}
