// Package accounting provides the outbound accounting adapter. Deductions are
// currently reported as structured log events.
package accounting

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
)

// SlogRecorder reports inventory deductions as structured log events.
type SlogRecorder struct {
	logger *slog.Logger
}

// NewSlogRecorder creates a log-backed accounting recorder.
func NewSlogRecorder(logger *slog.Logger) *SlogRecorder {
	return &SlogRecorder{
		logger: logger.With("component", "accounting_recorder"),
	}
}

// RecordDeduction reports that quantity units of the SKU were consumed for
// the order.
func (r *SlogRecorder) RecordDeduction(ctx context.Context, orderID, skuID kernel.UUID, quantity int) error {
	r.logger.InfoContext(ctx, "Inventory deduction recorded",
		"order_id", orderID.String(),
		"sku_id", skuID.String(),
		"quantity", quantity)
	return nil
}
