package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// NotificationPublisher notifies downstream systems about order milestones.
// Implementations must be safe to call after the owning transaction commits.
type NotificationPublisher interface {
	// PublishOrderShipped announces that the order left the warehouse.
	PublishOrderShipped(ctx context.Context, orderID kernel.UUID) error

	// PublishOrderBackordered announces that the order could not be
	// allocated and waits for stock.
	PublishOrderBackordered(ctx context.Context, orderID kernel.UUID) error
}

// AccountingRecorder reports inventory deductions to the accounting system.
type AccountingRecorder interface {
	// RecordDeduction reports that quantity units of the SKU were consumed
	// for the order.
	RecordDeduction(ctx context.Context, orderID, skuID kernel.UUID, quantity int) error
}
