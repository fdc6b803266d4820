package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

// GetCustomerQuery retrieves a single customer profile.
type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for a single customer.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	query := GetCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	query.customerID = customerID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requested customer.
func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerQueryResponse carries a read model of one customer profile.
type GetCustomerQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
}
