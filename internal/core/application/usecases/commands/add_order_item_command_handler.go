package commands

import (
	"context"
)

// AddOrderItemCommandHandler handles adding product lines to an order.
// Loads the aggregate, applies the domain operation, stages the raised
// events, and saves with the optimistic concurrency check.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for line addition operations.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line addition command.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(cmd.ProductID(), cmd.UnitPrice(), cmd.Quantity()); err != nil {
		return err
	}

	if err = uow.OutboxRepository().SaveEvents(ctx, aggregate.PendingEvents()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}
	aggregate.ClearPendingEvents()

	return nil
}
