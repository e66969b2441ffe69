package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler retrieves the status view of one order from the
// database: the order row, its items, and its state change history.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the order
// does not exist.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	response, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	response.Items, err = h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	response.History, err = h.readHistory(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderStatusQueryHandler) readOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderStatusQueryResponse, error) {
	var response GetOrderStatusQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			priority,
			progress,
			picker_id,
			packer_id
		FROM orders
		WHERE id = ?
	`, orderID.String()).Row()

	var (
		id               uuid.UUID
		status, priority int
		progress         int
		pickerID         sql.Null[uuid.UUID]
		packerID         sql.Null[uuid.UUID]
	)
	if err := row.Scan(&id, &status, &priority, &progress, &pickerID, &packerID); err != nil {
		if err == sql.ErrNoRows {
			return response, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return response, err
	}

	responseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return response, err
	}

	response.ID = responseID
	response.Status = order.Status(status)
	response.Priority = order.Priority(priority)
	response.Progress = progress
	if response.PickerID, err = optionalUUID(pickerID); err != nil {
		return response, err
	}
	if response.PackerID, err = optionalUUID(packerID); err != nil {
		return response, err
	}

	return response, nil
}

func (h GetOrderStatusQueryHandler) readItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku_id,
			quantity,
			picked_quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			id, skuID                uuid.UUID
			quantity, pickedQuantity int
		)
		if err = rows.Scan(&id, &skuID, &quantity, &pickedQuantity); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemSKUID, idErr := kernel.UUIDFromBytes(skuID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemResponse{
			ID:             itemID,
			SKUID:          itemSKUID,
			Quantity:       quantity,
			PickedQuantity: pickedQuantity,
		})
	}

	return items, rows.Err()
}

func (h GetOrderStatusQueryHandler) readHistory(
	ctx context.Context,
	orderID kernel.UUID,
) ([]StateChangeResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor_id,
			occurred_at
		FROM order_state_changes
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StateChangeResponse, 0)
	for rows.Next() {
		var change StateChangeResponse
		var from, to int
		var actorID uuid.UUID

		if err = rows.Scan(&from, &to, &actorID, &change.OccurredAt); err != nil {
			return nil, err
		}

		change.From = order.Status(from)
		change.To = order.Status(to)
		if change.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}
		history = append(history, change)
	}

	return history, rows.Err()
}

func optionalUUID(value sql.Null[uuid.UUID]) (*kernel.UUID, error) {
	if !value.Valid {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(value.V[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
