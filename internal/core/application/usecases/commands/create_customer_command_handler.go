package commands

import (
	"context"

	"ordering/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles customer registration.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration operations.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Email())
	if err != nil {
		return err
	}

	if err = uow.OutboxRepository().SaveEvents(ctx, aggregate.PendingEvents()); err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}
	aggregate.ClearPendingEvents()

	return nil
}
