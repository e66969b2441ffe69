package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picktask"
)

// PickTaskRepository defines the persistence contract for pick tasks.
type PickTaskRepository interface {
	// Add persists a new pick task.
	Add(ctx context.Context, task *picktask.Task) error

	// Update persists changes to an existing pick task.
	Update(ctx context.Context, task *picktask.Task) error

	// Get retrieves a pick task by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*picktask.Task, error)

	// GetByOrder retrieves all tasks of one order, in bin code order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*picktask.Task, error)
}
