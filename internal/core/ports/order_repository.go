// Package ports defines the contracts between the application core and
// infrastructure adapters. Repositories persist aggregates, the unit of work
// scopes them to a transaction, and the event publisher pushes domain events
// to the message broker.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// NextID mints the identifier for a new order aggregate.
	NextID() kernel.UUID

	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The stored version must match the aggregate's version; a stale
	// aggregate fails with errs.ConcurrencyConflictError and no rows are
	// written. On success the aggregate's version is incremented.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with all
	// of its lines. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnfinished retrieves orders that are neither delivered nor
	// cancelled. Used by operational dashboards and the unfinished-orders
	// query.
	GetAllUnfinished(ctx context.Context) ([]*order.Order, error)
}
