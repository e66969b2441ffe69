package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetBackorderedOrdersQueryIsNotConstructed = errors.New(
	"GetBackorderedOrdersQuery must be created via NewGetBackorderedOrdersQuery constructor",
)

// GetBackorderedOrdersQuery retrieves all orders waiting in Backorder,
// oldest first, for supervisor visibility into stock-starved demand.
type GetBackorderedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBackorderedOrdersQuery creates a query to list backordered orders.
func NewGetBackorderedOrdersQuery() GetBackorderedOrdersQuery {
	return GetBackorderedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBackorderedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBackorderedOrdersQueryIsNotConstructed)
}

// BackorderedOrderResponse is one order waiting for stock.
type BackorderedOrderResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Priority   order.Priority
	CreatedAt  time.Time
}
