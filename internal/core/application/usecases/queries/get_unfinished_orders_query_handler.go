package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnfinishedOrdersQueryHandler retrieves orders that are neither delivered
// nor cancelled straight from the database.
type GetUnfinishedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnfinishedOrdersQueryHandler creates a handler for unfinished-order
// queries.
func NewGetUnfinishedOrdersQueryHandler(db *gorm.DB) GetUnfinishedOrdersQueryHandler {
	return GetUnfinishedOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order ID for consistent
// output.
func (h GetUnfinishedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnfinishedOrdersQuery,
) ([]GetUnfinishedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnfinishedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			currency
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, int(order.Delivered), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnfinishedOrdersQueryResponse
		var id, customerID uuid.UUID
		var status int

		if err = rows.Scan(&id, &customerID, &status, &resp.Currency); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
