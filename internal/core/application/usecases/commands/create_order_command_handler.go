package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrSKUIsNotSellable is returned when an order references a SKU that does
// not exist or has been deactivated.
var ErrSKUIsNotSellable = errors.New("sku does not exist or is not active")

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies each referenced SKU against the catalog and persists the order in
// Pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Each requested SKU must exist and be active; no inventory is checked or
// reserved here, availability is resolved when a picker claims the order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	skuRepo := uow.SKURepository()
	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		sku, err := skuRepo.Get(ctx, line.SKUID)
		if err != nil {
			return err
		}
		if !sku.IsActive() {
			return ErrSKUIsNotSellable
		}

		item, err := order.NewItem(kernel.NewUUID(), line.SKUID, line.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Priority(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
