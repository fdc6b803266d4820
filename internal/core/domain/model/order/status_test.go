package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		valid := []order.Status{
			order.Draft, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled,
		}
		for _, s := range valid {
			assert.NoError(t, s.Validate(), "status %s", s)
		}
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		invalid := []order.Status{order.Unknown, order.Status(99), order.Status(-1)}
		for _, s := range invalid {
			assert.Error(t, s.Validate(), "status %d", s)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", order.Draft.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Draft.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("draft can be confirmed", func(t *testing.T) {
		next, err := order.Draft.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)
	})

	t.Run("other statuses cannot be confirmed", func(t *testing.T) {
		for _, s := range []order.Status{order.Confirmed, order.Shipped, order.Delivered, order.Cancelled, order.Unknown} {
			_, err := s.Confirm()
			require.Error(t, err, "status %s", s)
			assert.Contains(t, err.Error(), "not a valid status to confirm")
		}
	})
}

func TestStatus_Ship(t *testing.T) {
	t.Run("confirmed can be shipped", func(t *testing.T) {
		next, err := order.Confirmed.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, next)
	})

	t.Run("other statuses cannot be shipped", func(t *testing.T) {
		for _, s := range []order.Status{order.Draft, order.Shipped, order.Delivered, order.Cancelled, order.Unknown} {
			_, err := s.Ship()
			require.Error(t, err, "status %s", s)
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("shipped can be delivered", func(t *testing.T) {
		next, err := order.Shipped.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("other statuses cannot be delivered", func(t *testing.T) {
		for _, s := range []order.Status{order.Draft, order.Confirmed, order.Delivered, order.Cancelled, order.Unknown} {
			_, err := s.Deliver()
			require.Error(t, err, "status %s", s)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("draft and confirmed can be cancelled", func(t *testing.T) {
		for _, s := range []order.Status{order.Draft, order.Confirmed} {
			next, err := s.Cancel()
			require.NoError(t, err, "status %s", s)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("shipped, delivered and terminal statuses cannot be cancelled", func(t *testing.T) {
		for _, s := range []order.Status{order.Shipped, order.Delivered, order.Cancelled, order.Unknown} {
			_, err := s.Cancel()
			require.Error(t, err, "status %s", s)
		}
	})
}

func TestStatus_ValidateModifyItems(t *testing.T) {
	t.Run("items can change in draft and confirmed", func(t *testing.T) {
		require.NoError(t, order.Draft.ValidateModifyItems())
		require.NoError(t, order.Confirmed.ValidateModifyItems())
	})

	t.Run("items are frozen after shipping and in terminal states", func(t *testing.T) {
		for _, s := range []order.Status{order.Shipped, order.Delivered, order.Cancelled, order.Unknown} {
			require.Error(t, s.ValidateModifyItems(), "status %s", s)
		}
	})
}
