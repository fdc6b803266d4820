package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its lines straight from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no order
// exists with the given identifier. The total is the sum of price times
// quantity over the lines.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			street,
			city,
			currency,
			status,
			tracking_ref,
			cancel_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&resp.Street,
		&resp.City,
		&resp.Currency,
		&status,
		&resp.TrackingRef,
		&resp.CancelReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			price_amount,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var itemID, productID uuid.UUID

		if err = rows.Scan(&itemID, &productID, &item.PriceAmount, &item.Quantity); err != nil {
			return GetOrderQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}

		resp.TotalAmount += item.PriceAmount * int64(item.Quantity)
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
