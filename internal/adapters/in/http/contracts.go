package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string                   `json:"customer_id"`
	Priority   string                   `json:"priority"`
	Items      []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one requested order line.
type CreateOrderItemRequest struct {
	SKUID    string `json:"sku_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ActorRequest carries the operator performing a lifecycle action.
type ActorRequest struct {
	ActorID string `json:"actor_id"`
}

// CompleteTaskRequest is the body of POST /api/v1/tasks/:taskID/complete.
type CompleteTaskRequest struct {
	PickerID       string `json:"picker_id"`
	PickedQuantity int    `json:"picked_quantity"`
}

// StartTaskRequest is the body of POST /api/v1/tasks/:taskID/start.
type StartTaskRequest struct {
	PickerID string `json:"picker_id"`
}

// SkipTaskRequest is the body of POST /api/v1/tasks/:taskID/skip.
type SkipTaskRequest struct {
	PickerID string `json:"picker_id"`
	Reason   string `json:"reason"`
}

// ReceiveStockRequest is the body of POST /api/v1/inventory/receipts.
type ReceiveStockRequest struct {
	SKUID    string `json:"sku_id"`
	BinCode  string `json:"bin_code"`
	Quantity int    `json:"quantity"`
	ActorID  string `json:"actor_id"`
}

// AdjustInventoryRequest is the body of POST /api/v1/inventory/adjustments.
type AdjustInventoryRequest struct {
	SKUID   string `json:"sku_id"`
	BinCode string `json:"bin_code"`
	Delta   int    `json:"delta"`
	Reason  string `json:"reason"`
	ActorID string `json:"actor_id"`
}

// OrderStatusResponse is the body of GET /api/v1/orders/:orderID.
type OrderStatusResponse struct {
	ID       string                `json:"id"`
	Status   string                `json:"status"`
	Priority string                `json:"priority"`
	Progress int                   `json:"progress"`
	PickerID *string               `json:"picker_id,omitempty"`
	PackerID *string               `json:"packer_id,omitempty"`
	Items    []OrderItemResponse   `json:"items"`
	History  []StateChangeResponse `json:"history"`
}

// OrderItemResponse is one order line with its pick progress.
type OrderItemResponse struct {
	ID             string `json:"id"`
	SKUID          string `json:"sku_id"`
	Quantity       int    `json:"quantity"`
	PickedQuantity int    `json:"picked_quantity"`
}

// StateChangeResponse is one entry of the order's audit history.
type StateChangeResponse struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// InventoryTransactionResponse is one entry of a SKU's movement history.
type InventoryTransactionResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	BinCode       string    `json:"bin_code"`
	QuantityDelta int       `json:"quantity_delta"`
	OrderID       *string   `json:"order_id,omitempty"`
	ActorID       string    `json:"actor_id"`
	Reason        string    `json:"reason"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BackorderedOrderResponse is one order waiting for stock.
type BackorderedOrderResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Priority   string    `json:"priority"`
	CreatedAt  time.Time `json:"created_at"`
}

// PickerTaskResponse is one open task on a picker's route.
type PickerTaskResponse struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	SKUCode  string `json:"sku_code"`
	BinCode  string `json:"bin_code"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

func toOrderStatusResponse(status queries.GetOrderStatusQueryResponse) OrderStatusResponse {
	items := make([]OrderItemResponse, 0, len(status.Items))
	for _, item := range status.Items {
		items = append(items, OrderItemResponse{
			ID:             item.ID.String(),
			SKUID:          item.SKUID.String(),
			Quantity:       item.Quantity,
			PickedQuantity: item.PickedQuantity,
		})
	}

	history := make([]StateChangeResponse, 0, len(status.History))
	for _, change := range status.History {
		history = append(history, StateChangeResponse{
			From:       change.From.String(),
			To:         change.To.String(),
			ActorID:    change.ActorID.String(),
			OccurredAt: change.OccurredAt,
		})
	}

	response := OrderStatusResponse{
		ID:       status.ID.String(),
		Status:   status.Status.String(),
		Priority: status.Priority.String(),
		Progress: status.Progress,
		Items:    items,
		History:  history,
	}
	if status.PickerID != nil {
		picker := status.PickerID.String()
		response.PickerID = &picker
	}
	if status.PackerID != nil {
		packer := status.PackerID.String()
		response.PackerID = &packer
	}

	return response
}

func toInventoryTransactionResponse(tx queries.InventoryTransactionResponse) InventoryTransactionResponse {
	response := InventoryTransactionResponse{
		ID:            tx.ID.String(),
		Type:          tx.Type.String(),
		BinCode:       tx.BinCode,
		QuantityDelta: tx.QuantityDelta,
		ActorID:       tx.ActorID.String(),
		Reason:        tx.Reason,
		OccurredAt:    tx.OccurredAt,
	}
	if tx.OrderID != nil {
		orderID := tx.OrderID.String()
		response.OrderID = &orderID
	}

	return response
}
