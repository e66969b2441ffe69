// Package taskrepo persists pick tasks, the per-bin work items generated when
// a picker claims an order.
package taskrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picktask"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for one pick task.
type TaskDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderItemID    uuid.UUID `gorm:"type:uuid;not null"`
	SKUID          uuid.UUID `gorm:"type:uuid;not null"`
	BinCode        string    `gorm:"type:varchar(16);not null"`
	Quantity       int       `gorm:"type:int;not null"`
	PickedQuantity int       `gorm:"type:int;not null"`
	Status         int       `gorm:"type:int;not null;index"`
	PickerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	StartedAt      *time.Time
	CompletedAt    *time.Time
	SkippedAt      *time.Time
	SkipReason     string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for pick tasks.
func (TaskDTO) TableName() string {
	return "pick_tasks"
}

func fromDomain(task *picktask.Task) TaskDTO {
	return TaskDTO{
		ID:             task.ID().Bytes(),
		OrderID:        task.OrderID().Bytes(),
		OrderItemID:    task.OrderItemID().Bytes(),
		SKUID:          task.SKUID().Bytes(),
		BinCode:        task.BinCode().String(),
		Quantity:       task.Quantity(),
		PickedQuantity: task.PickedQuantity(),
		Status:         int(task.Status()),
		PickerID:       task.PickerID().Bytes(),
		StartedAt:      task.StartedAt(),
		CompletedAt:    task.CompletedAt(),
		SkippedAt:      task.SkippedAt(),
		SkipReason:     task.SkipReason(),
	}
}

func toDomain(dto TaskDTO) (*picktask.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	orderItemID, err := kernel.UUIDFromBytes(dto.OrderItemID[:])
	if err != nil {
		return nil, err
	}
	skuID, err := kernel.UUIDFromBytes(dto.SKUID[:])
	if err != nil {
		return nil, err
	}
	binCode, err := kernel.ParseBinCode(dto.BinCode)
	if err != nil {
		return nil, err
	}
	pickerID, err := kernel.UUIDFromBytes(dto.PickerID[:])
	if err != nil {
		return nil, err
	}

	return picktask.RestoreTask(
		id,
		orderID,
		orderItemID,
		skuID,
		binCode,
		dto.Quantity,
		dto.PickedQuantity,
		picktask.Status(dto.Status),
		pickerID,
		dto.StartedAt,
		dto.CompletedAt,
		dto.SkippedAt,
		dto.SkipReason,
	)
}
