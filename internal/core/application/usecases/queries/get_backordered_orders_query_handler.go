package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBackorderedOrdersQueryHandler retrieves orders waiting for stock from
// the database.
type GetBackorderedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBackorderedOrdersQueryHandler creates a handler for backorder queries.
// Requires a GORM database connection for query execution.
func NewGetBackorderedOrdersQueryHandler(db *gorm.DB) GetBackorderedOrdersQueryHandler {
	return GetBackorderedOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned oldest first so the longest
// waiting demand is visible on top.
func (h GetBackorderedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBackorderedOrdersQuery,
) ([]BackorderedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			priority,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, int(order.StatusBackorder)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]BackorderedOrderResponse, 0)
	for rows.Next() {
		var resp BackorderedOrderResponse
		var id, customerID uuid.UUID
		var priority int

		if err = rows.Scan(&id, &customerID, &priority, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		resp.Priority = order.Priority(priority)

		orders = append(orders, resp)
	}

	return orders, rows.Err()
}
