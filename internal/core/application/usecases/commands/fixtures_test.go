package commands_test

import (
	"testing"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("1 Main St", "Springfield")
	require.NoError(t, err)
	return address
}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), mustAddress(t), "USD")
	require.NoError(t, err)
	o.ClearPendingEvents()
	return o
}

func newDraftOrderWithItem(t *testing.T) *order.Order {
	t.Helper()
	o := newDraftOrder(t)
	price, err := kernel.NewMoney(1000, "USD")
	require.NoError(t, err)
	qty, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(kernel.NewUUID(), price, qty))
	o.ClearPendingEvents()
	return o
}

func newConfirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newDraftOrderWithItem(t)
	require.NoError(t, o.Confirm())
	o.ClearPendingEvents()
	return o
}

func newShippedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newConfirmedOrder(t)
	require.NoError(t, o.Ship("TRACK-123"))
	o.ClearPendingEvents()
	return o
}

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	email, err := kernel.NewEmail("jane@example.com")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), "Jane Roe", email)
	require.NoError(t, err)
	c.ClearPendingEvents()
	return c
}
