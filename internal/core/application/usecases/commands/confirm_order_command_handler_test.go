package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftOrderWithItem(t)
	cmd, _ := commands.NewConfirmOrderCommand(aggregate.ID())

	orderRepo := new(MockOrderRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("SaveEvents", mock.Anything, mock.Anything).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Confirmed, aggregate.Status())
	require.Empty(t, aggregate.PendingEvents())
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_EmptyOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftOrder(t)
	cmd, _ := commands.NewConfirmOrderCommand(aggregate.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	require.Equal(t, order.Draft, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_CommitErrorKeepsPendingEvents(t *testing.T) {
	ctx := t.Context()
	aggregate := newDraftOrderWithItem(t)
	cmd, _ := commands.NewConfirmOrderCommand(aggregate.ID())

	orderRepo := new(MockOrderRepository)
	outboxRepo := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("SaveEvents", mock.Anything, mock.Anything).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	// The events stay buffered so a retry can stage them again.
	require.NotEmpty(t, aggregate.PendingEvents())
	uow.AssertExpectations(t)
}
