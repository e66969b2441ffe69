package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picktask"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickerTasksQueryHandler retrieves a picker's open tasks from the
// database, joined with the catalog for human-readable SKU codes.
type GetPickerTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetPickerTasksQueryHandler creates a handler for picker task queries.
// Requires a GORM database connection for query execution.
func NewGetPickerTasksQueryHandler(db *gorm.DB) GetPickerTasksQueryHandler {
	return GetPickerTasksQueryHandler{db: db}
}

// Handle executes the query. Only Pending and InProgress tasks are returned,
// sorted by bin code to follow the picking route.
func (h GetPickerTasksQueryHandler) Handle(
	ctx context.Context,
	query GetPickerTasksQuery,
) ([]PickerTaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.order_id,
			s.code,
			t.bin_code,
			t.quantity,
			t.status
		FROM pick_tasks t
		JOIN skus s ON s.id = t.sku_id
		WHERE t.picker_id = ? AND t.status IN (?, ?)
		ORDER BY t.bin_code
	`, query.PickerID().String(),
		int(picktask.StatusPending), int(picktask.StatusInProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]PickerTaskResponse, 0)
	for rows.Next() {
		var resp PickerTaskResponse
		var id, orderID uuid.UUID
		var status int

		err = rows.Scan(&id, &orderID, &resp.SKUCode, &resp.BinCode, &resp.Quantity, &status)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.Status = picktask.Status(status)

		tasks = append(tasks, resp)
	}

	return tasks, rows.Err()
}
