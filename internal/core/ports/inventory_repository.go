package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory units.
type InventoryRepository interface {
	// Add persists a new inventory unit.
	Add(ctx context.Context, unit *inventory.Unit) error

	// Update persists changes to an existing inventory unit.
	Update(ctx context.Context, unit *inventory.Unit) error

	// Get retrieves the unit holding the given SKU at the given bin.
	Get(ctx context.Context, skuID kernel.UUID, binCode kernel.BinCode) (*inventory.Unit, error)

	// GetForUpdate retrieves the unit for one SKU and bin and locks its row
	// for the duration of the current transaction.
	GetForUpdate(ctx context.Context, skuID kernel.UUID, binCode kernel.BinCode) (*inventory.Unit, error)

	// GetBySKU retrieves all units holding the given SKUs without locking,
	// in ascending bin code order. Suitable for availability checks that do
	// not mutate the units.
	GetBySKU(ctx context.Context, skuIDs []kernel.UUID) ([]*inventory.Unit, error)

	// GetBySKUForUpdate retrieves all units holding the given SKUs, locking
	// their rows. Rows are locked and returned in ascending bin code order
	// so concurrent allocations acquire locks in the same sequence.
	GetBySKUForUpdate(ctx context.Context, skuIDs []kernel.UUID) ([]*inventory.Unit, error)
}
