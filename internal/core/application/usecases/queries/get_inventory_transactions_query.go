package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetInventoryTransactionsQueryIsNotConstructed = errors.New(
	"GetInventoryTransactionsQuery must be created via NewGetInventoryTransactionsQuery constructor",
)

// GetInventoryTransactionsQuery retrieves the movement history of one SKU
// across all bins, newest first.
type GetInventoryTransactionsQuery struct {
	skuID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInventoryTransactionsQuery creates a query for a SKU's movement history.
func NewGetInventoryTransactionsQuery(skuID kernel.UUID) (GetInventoryTransactionsQuery, error) {
	if err := skuID.Validate(); err != nil {
		return GetInventoryTransactionsQuery{}, err
	}

	return GetInventoryTransactionsQuery{
		skuID: skuID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryTransactionsQueryIsNotConstructed)
}

// SKUID returns the queried SKU.
func (q GetInventoryTransactionsQuery) SKUID() kernel.UUID {
	return q.skuID
}

// InventoryTransactionResponse is one recorded inventory movement.
type InventoryTransactionResponse struct {
	ID            kernel.UUID
	Type          inventory.TransactionType
	BinCode       string
	QuantityDelta int
	OrderID       *kernel.UUID
	ActorID       kernel.UUID
	Reason        string
	OccurredAt    time.Time
}
