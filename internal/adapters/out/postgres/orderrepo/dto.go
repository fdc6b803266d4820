// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs the optimistic concurrency check on updates.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	Street       string
	City         string
	Currency     string `gorm:"size:3"`
	Status       int    `gorm:"index"`
	TrackingRef  string
	CancelReason string
	CreatedAt    time.Time
	Version      int
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line row. Lines live and die with their order.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	ProductID     uuid.UUID `gorm:"type:uuid"`
	PriceAmount   int64
	PriceCurrency string `gorm:"size:3"`
	Quantity      int
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       aggregate.ID().Bytes(),
			ProductID:     item.ProductID().Bytes(),
			PriceAmount:   item.UnitPrice().Amount(),
			PriceCurrency: item.UnitPrice().Currency(),
			Quantity:      item.Quantity().Value(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Street:       aggregate.Address().Street(),
		City:         aggregate.Address().City(),
		Currency:     aggregate.Currency(),
		Status:       int(aggregate.Status()),
		TrackingRef:  aggregate.TrackingRef(),
		CancelReason: aggregate.CancelReason(),
		CreatedAt:    aggregate.CreatedAt(),
		Version:      aggregate.Version(),
		Items:        itemDTOs,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Street, dto.City)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		address,
		dto.Currency,
		order.Status(dto.Status),
		items,
		dto.TrackingRef,
		dto.CancelReason,
		dto.CreatedAt,
		dto.Version,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return order.Item{}, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, productID, unitPrice, quantity)
}
