// Package queries contains read-only operations of the CQRS architecture.
// Query handlers bypass the aggregates and read projections straight from
// the database.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the full status view of one order: lifecycle
// status, derived progress, per-item pick state, and the transition history.
type GetOrderStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for one order's status view.
func NewGetOrderStatusQuery(orderID kernel.UUID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the queried order.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderStatusQueryResponse is the status view of one order.
type GetOrderStatusQueryResponse struct {
	ID       kernel.UUID
	Status   order.Status
	Priority order.Priority
	Progress int
	PickerID *kernel.UUID
	PackerID *kernel.UUID
	Items    []OrderItemResponse
	History  []StateChangeResponse
}

// OrderItemResponse is the pick state of one order line.
type OrderItemResponse struct {
	ID             kernel.UUID
	SKUID          kernel.UUID
	Quantity       int
	PickedQuantity int
}

// StateChangeResponse is one recorded status transition.
type StateChangeResponse struct {
	From       order.Status
	To         order.Status
	ActorID    kernel.UUID
	OccurredAt time.Time
}
