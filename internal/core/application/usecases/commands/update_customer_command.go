package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
	)
)

// UpdateCustomerCommand represents a request to replace a customer's profile.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      kernel.Email

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer profile.
func NewUpdateCustomerCommand(customerID kernel.UUID, name string, email string) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new display name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Email returns the new contact email.
func (c UpdateCustomerCommand) Email() kernel.Email {
	return c.email
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateCustomerCommand) setEmail(address string) error {
	email, err := kernel.NewEmail(address)
	if err != nil {
		return err
	}

	c.email = email
	return nil
}
