package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when attempting to use an improperly
// initialized Quantity. Quantities must be created via NewQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity constructor")

// Quantity represents a strictly positive count of units on an order line.
// Quantity is an immutable value object; Add returns a new instance.
type Quantity struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity. The value must be greater than zero.
func NewQuantity(value int) (Quantity, error) {
	q := Quantity{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setValue(value); err != nil {
		return Quantity{}, err
	}

	return q, nil
}

// Validate checks that the Quantity was created through the constructor.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the unit count.
func (q Quantity) Value() int {
	return q.value
}

// String returns a human-readable representation such as "Quantity(5)".
func (q Quantity) String() string {
	return fmt.Sprintf("Quantity(%d)", q.value)
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// Add returns the sum of two quantities. Used when merging order lines for
// the same product.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if err := q.Validate(); err != nil {
		return Quantity{}, err
	}
	if err := other.Validate(); err != nil {
		return Quantity{}, err
	}

	return NewQuantity(q.value + other.value)
}

func (q *Quantity) setValue(value int) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", value))
	}

	q.value = value
	return nil
}
