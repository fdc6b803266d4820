package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderItemCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, 1000, "USD", 3)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, int64(1000), cmd.UnitPrice().Amount())
	assert.Equal(t, "USD", cmd.UnitPrice().Currency())
	assert.Equal(t, 3, cmd.Quantity().Value())
}

func TestNewAddOrderItemCommand_InvalidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()

	_, err := commands.NewAddOrderItemCommand(kernel.UUID{}, productID, 1000, "USD", 1)
	require.Error(t, err)

	_, err = commands.NewAddOrderItemCommand(orderID, kernel.UUID{}, 1000, "USD", 1)
	require.Error(t, err)

	_, err = commands.NewAddOrderItemCommand(orderID, productID, -1, "USD", 1)
	require.Error(t, err)

	_, err = commands.NewAddOrderItemCommand(orderID, productID, 1000, "dollars", 1)
	require.Error(t, err)

	_, err = commands.NewAddOrderItemCommand(orderID, productID, 1000, "USD", 0)
	require.Error(t, err)
}

func TestAddOrderItemCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AddOrderItemCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrAddOrderItemCommandIsNotConstructed)
}
