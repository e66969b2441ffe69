// Package auditrepo persists the append-only audit trail: inventory
// transactions and order state change records.
package auditrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// TransactionDTO represents the database structure for one inventory
// transaction record.
type TransactionDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TransactionType int        `gorm:"type:int;not null"`
	SKUID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	BinCode         string     `gorm:"type:varchar(16);not null"`
	QuantityDelta   int        `gorm:"type:int;not null"`
	OrderID         *uuid.UUID `gorm:"type:uuid;index"`
	ActorID         uuid.UUID  `gorm:"type:uuid;not null"`
	Reason          string     `gorm:"type:varchar(255);not null"`
	OccurredAt      time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for inventory transactions.
func (TransactionDTO) TableName() string {
	return "inventory_transactions"
}

// StateChangeDTO represents the database structure for one order state
// change record.
type StateChangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus int       `gorm:"type:int;not null"`
	ToStatus   int       `gorm:"type:int;not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	OccurredAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for order state changes.
func (StateChangeDTO) TableName() string {
	return "order_state_changes"
}

func transactionFromDomain(tx *inventory.Transaction) TransactionDTO {
	var orderID *uuid.UUID
	if tx.OrderID() != nil {
		raw := tx.OrderID().Bytes()
		orderID = &raw
	}

	return TransactionDTO{
		ID:              tx.ID().Bytes(),
		TransactionType: int(tx.Type()),
		SKUID:           tx.SKUID().Bytes(),
		BinCode:         tx.BinCode().String(),
		QuantityDelta:   tx.QuantityDelta(),
		OrderID:         orderID,
		ActorID:         tx.ActorID().Bytes(),
		Reason:          tx.Reason(),
		OccurredAt:      tx.OccurredAt(),
	}
}

func transactionToDomain(dto TransactionDTO) (*inventory.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		parsed, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &parsed
	}

	return inventory.RestoreTransaction(
		id,
		inventory.TransactionType(dto.TransactionType),
		skuID,
		binCode,
		dto.QuantityDelta,
		orderID,
		actorID,
		dto.Reason,
		dto.OccurredAt,
	)
}

func stateChangeFromDomain(change *order.StateChange) StateChangeDTO {
	return StateChangeDTO{
		ID:         change.ID().Bytes(),
		OrderID:    change.OrderID().Bytes(),
		FromStatus: int(change.From()),
		ToStatus:   int(change.To()),
		ActorID:    change.ActorID().Bytes(),
		OccurredAt: change.OccurredAt(),
	}
}

func stateChangeToDomain(dto StateChangeDTO) (*order.StateChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreStateChange(
		id,
		orderID,
		order.Status(dto.FromStatus),
		order.Status(dto.ToStatus),
		actorID,
		dto.OccurredAt,
	)
}
