package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetUnfinishedOrdersQueryIsNotConstructed = errors.New(
		"GetUnfinishedOrdersQuery must be created via NewGetUnfinishedOrdersQuery constructor",
	)
)

// GetUnfinishedOrdersQuery retrieves all orders that have not reached a
// terminal status, for operational dashboards.
type GetUnfinishedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnfinishedOrdersQuery creates a query to retrieve unfinished orders.
// This is a parameterless query.
func NewGetUnfinishedOrdersQuery() GetUnfinishedOrdersQuery {
	return GetUnfinishedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnfinishedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfinishedOrdersQueryIsNotConstructed)
}

// GetUnfinishedOrdersQueryResponse carries a read model of one unfinished
// order.
type GetUnfinishedOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     string
	Currency   string
}
