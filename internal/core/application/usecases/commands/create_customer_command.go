package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      kernel.Email

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(customerID kernel.UUID, name string, email string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c CreateCustomerCommand) Email() kernel.Email {
	return c.email
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(address string) error {
	email, err := kernel.NewEmail(address)
	if err != nil {
		return err
	}

	c.email = email
	return nil
}
