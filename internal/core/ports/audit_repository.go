package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// AuditRepository defines the persistence contract for the append-only audit
// records: inventory transactions and order state changes. Records are
// written in the same database transaction as the stock or status mutation
// they describe.
type AuditRepository interface {
	// AppendTransaction persists one inventory transaction record.
	AppendTransaction(ctx context.Context, transaction *inventory.Transaction) error

	// AppendStateChanges persists order state change records in the order given.
	AppendStateChanges(ctx context.Context, changes []*order.StateChange) error

	// GetTransactions retrieves inventory transactions for one SKU,
	// newest first.
	GetTransactions(ctx context.Context, skuID kernel.UUID) ([]*inventory.Transaction, error)

	// GetStateChanges retrieves the state change history of one order,
	// oldest first.
	GetStateChanges(ctx context.Context, orderID kernel.UUID) ([]*order.StateChange, error)
}
