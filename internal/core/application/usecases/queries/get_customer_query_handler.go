package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQueryHandler retrieves one customer profile straight from the
// database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single-customer queries.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no
// customer exists with the given identifier.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (GetCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	var resp GetCustomerQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	err := row.Scan(&id, &resp.Name, &resp.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCustomerQueryResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID().String())
	}
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	return resp, nil
}
