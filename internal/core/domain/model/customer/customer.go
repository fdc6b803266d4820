package customer

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through its constructor.
var ErrCustomerIsNotConstructed = errors.New("customer must be created via NewCustomer or RestoreCustomer")

// Customer is the aggregate root for a customer profile.
type Customer struct {
	kernel.BaseAggregate

	name  string
	email kernel.Email

	isConstructed bool
}

// NewCustomer registers a new customer with the given name and contact email.
// Raises a RegisteredEvent.
func NewCustomer(id kernel.UUID, name string, email kernel.Email) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	c.RaiseEvent(NewRegisteredEvent(id, name, email))
	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence. No event is
// raised and the pending buffer starts empty.
func RestoreCustomer(id kernel.UUID, name string, email kernel.Email, version int) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
		id.Validate(),
	); err != nil {
		return nil, err
	}

	c.BaseAggregate = kernel.RestoreBaseAggregate(id, version)
	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.ID().IsEqual(other.ID())
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c *Customer) Email() kernel.Email {
	return c.email
}

// Update replaces the customer's profile with the given name and email.
// Raises an UpdatedEvent.
func (c *Customer) Update(name string, email kernel.Email) error {
	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return err
	}

	c.RaiseEvent(NewUpdatedEvent(c.ID(), name, email))
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.BaseAggregate = kernel.NewBaseAggregate(id)
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}
