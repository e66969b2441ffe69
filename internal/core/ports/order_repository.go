// Package ports defines repository and collaborator interfaces of the
// fulfillment core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and its items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row for the
	// duration of the current transaction. Lifecycle commands load orders
	// through this method so concurrent claims serialize on the row lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders in the given status, oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// CountActiveByPicker counts orders the picker currently works on,
	// that is orders in Picking status claimed by them.
	CountActiveByPicker(ctx context.Context, pickerID kernel.UUID) (int, error)

	// CountActiveByPacker counts orders in Packing status claimed by the packer.
	CountActiveByPacker(ctx context.Context, packerID kernel.UUID) (int, error)
}
