package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a shipping destination for an order.
// Address is an immutable value object compared by its full attribute set.
// An order cannot be confirmed without one.
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string
	guard  guard.ConstructorGuard
}

// NewAddress creates an Address. Both street and city are required.
func NewAddress(street string, city string) (Address, error) {
	a := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setStreet(street), a.setCity(city)); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate checks that the Address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// String returns a human-readable representation such as "Address(1 Main St, Springfield)".
func (a Address) String() string {
	return fmt.Sprintf("Address(%s, %s)", a.street, a.city)
}

// IsEqual compares two addresses structurally.
// Both addresses must be properly constructed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	a.city = city
	return nil
}
