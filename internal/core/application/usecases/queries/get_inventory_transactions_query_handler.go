package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryTransactionsQueryHandler retrieves the append-only movement
// history of one SKU from the database.
type GetInventoryTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryTransactionsQueryHandler creates a handler for movement
// history queries. Requires a GORM database connection for query execution.
func NewGetInventoryTransactionsQueryHandler(db *gorm.DB) GetInventoryTransactionsQueryHandler {
	return GetInventoryTransactionsQueryHandler{db: db}
}

// Handle executes the query. Movements are returned newest first.
func (h GetInventoryTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryTransactionsQuery,
) ([]InventoryTransactionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			transaction_type,
			bin_code,
			quantity_delta,
			order_id,
			actor_id,
			reason,
			occurred_at
		FROM inventory_transactions
		WHERE sku_id = ?
		ORDER BY occurred_at DESC, id
	`, query.SKUID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]InventoryTransactionResponse, 0)
	for rows.Next() {
		var resp InventoryTransactionResponse
		var (
			id, actorID     uuid.UUID
			transactionType int
			orderID         sql.Null[uuid.UUID]
		)

		err = rows.Scan(&id, &transactionType, &resp.BinCode, &resp.QuantityDelta,
			&orderID, &actorID, &resp.Reason, &resp.OccurredAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = optionalUUID(orderID); err != nil {
			return nil, err
		}
		resp.Type = inventory.TransactionType(transactionType)

		transactions = append(transactions, resp)
	}

	return transactions, rows.Err()
}
