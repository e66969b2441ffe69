// Package notify provides the outbound notification adapter. The current
// implementation emits structured log events; a message broker can replace it
// behind the same port without touching the handlers.
package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
)

// SlogPublisher publishes order milestone notifications as structured log
// events.
type SlogPublisher struct {
	logger *slog.Logger
}

// NewSlogPublisher creates a log-backed notification publisher.
func NewSlogPublisher(logger *slog.Logger) *SlogPublisher {
	return &SlogPublisher{
		logger: logger.With("component", "notification_publisher"),
	}
}

// PublishOrderShipped announces that the order left the warehouse.
func (p *SlogPublisher) PublishOrderShipped(ctx context.Context, orderID kernel.UUID) error {
	p.logger.InfoContext(ctx, "Order shipped", "order_id", orderID.String())
	return nil
}

// PublishOrderBackordered announces that the order waits for stock.
func (p *SlogPublisher) PublishOrderBackordered(ctx context.Context, orderID kernel.UUID) error {
	p.logger.InfoContext(ctx, "Order backordered", "order_id", orderID.String())
	return nil
}
