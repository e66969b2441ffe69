package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
)

// SKURepository defines the persistence contract for SKU reference data.
type SKURepository interface {
	// Add persists a new SKU.
	Add(ctx context.Context, sku *catalog.SKU) error

	// Update persists changes to an existing SKU.
	Update(ctx context.Context, sku *catalog.SKU) error

	// Get retrieves a SKU by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.SKU, error)

	// GetByCode retrieves a SKU by its human-readable code.
	GetByCode(ctx context.Context, code string) (*catalog.SKU, error)
}

// BinLocationRepository defines the persistence contract for bin locations.
type BinLocationRepository interface {
	// Add persists a new bin location.
	Add(ctx context.Context, location *catalog.BinLocation) error

	// Get retrieves a bin location by its slot code.
	Get(ctx context.Context, code kernel.BinCode) (*catalog.BinLocation, error)
}
