// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the hot paths: status scans for the queue views and operator
// lookups for the capacity checks.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Priority    int       `gorm:"type:int;not null"`
	Status      int       `gorm:"type:int;not null;index"`
	Progress    int       `gorm:"type:int;not null"`
	PickerID    *uuid.UUID `gorm:"type:uuid;index"`
	PackerID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	ClaimedAt   *time.Time
	PickedAt    *time.Time
	PackedAt    *time.Time
	ShippedAt   *time.Time
	CancelledAt *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	SKUID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity       int       `gorm:"type:int;not null"`
	PickedQuantity int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:             item.ID().Bytes(),
			OrderID:        orderID,
			SKUID:          item.SKUID().Bytes(),
			Quantity:       item.Quantity(),
			PickedQuantity: item.PickedQuantity(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		CustomerID:  aggregate.CustomerID().Bytes(),
		Priority:    int(aggregate.Priority()),
		Status:      int(aggregate.Status()),
		Progress:    aggregate.Progress(),
		PickerID:    optionalBytes(aggregate.PickerID()),
		PackerID:    optionalBytes(aggregate.PackerID()),
		CreatedAt:   aggregate.CreatedAt(),
		ClaimedAt:   aggregate.ClaimedAt(),
		PickedAt:    aggregate.PickedAt(),
		PackedAt:    aggregate.PackedAt(),
		ShippedAt:   aggregate.ShippedAt(),
		CancelledAt: aggregate.CancelledAt(),
		Items:       items,
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

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	pickerID, err := optionalUUID(dto.PickerID)
	if err != nil {
		return nil, err
	}
	packerID, err := optionalUUID(dto.PackerID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		order.Priority(dto.Priority),
		order.Status(dto.Status),
		items,
		pickerID,
		packerID,
		order.Timestamps{
			CreatedAt:   dto.CreatedAt,
			ClaimedAt:   dto.ClaimedAt,
			PickedAt:    dto.PickedAt,
			PackedAt:    dto.PackedAt,
			ShippedAt:   dto.ShippedAt,
			CancelledAt: dto.CancelledAt,
		},
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	skuID, err := kernel.UUIDFromBytes(dto.SKUID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, skuID, dto.Quantity, dto.PickedQuantity)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
