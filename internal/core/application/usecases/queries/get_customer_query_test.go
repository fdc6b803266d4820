package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerQuery_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()

	query, err := queries.NewGetCustomerQuery(customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, query.CustomerID())
	require.NoError(t, query.Validate())
}

func TestNewGetCustomerQuery_InvalidCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetCustomerQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetCustomerQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetCustomerQueryIsNotConstructed)
}
