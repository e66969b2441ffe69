package auditrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM. The audit trail
// is append-only: records are never updated or deleted.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// AppendTransaction writes one inventory transaction record.
func (r *GormAuditRepository) AppendTransaction(ctx context.Context, tx *inventory.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(tx)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendStateChanges writes the given order state change records.
func (r *GormAuditRepository) AppendStateChanges(ctx context.Context, changes []*order.StateChange) error {
	if len(changes) == 0 {
		return nil
	}

	dtos := make([]StateChangeDTO, 0, len(changes))
	for _, change := range changes {
		if err := change.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, stateChangeFromDomain(change))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetTransactions retrieves a SKU's inventory transactions, newest first.
func (r *GormAuditRepository) GetTransactions(
	ctx context.Context,
	skuID kernel.UUID,
) ([]*inventory.Transaction, error) {
	if err := skuID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at DESC, id").
		Find(&dtos, "sku_id = ?", skuID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*inventory.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		tx, txErr := transactionToDomain(dto)
		if txErr != nil {
			return nil, txErr
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// GetStateChanges retrieves an order's state change history, oldest first.
func (r *GormAuditRepository) GetStateChanges(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.StateChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StateChangeDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	changes := make([]*order.StateChange, 0, len(dtos))
	for _, dto := range dtos {
		change, changeErr := stateChangeToDomain(dto)
		if changeErr != nil {
			return nil, changeErr
		}
		changes = append(changes, change)
	}

	return changes, nil
}
