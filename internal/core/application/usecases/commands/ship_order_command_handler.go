package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// ShipOrderCommandHandler handles carrier handoff: the order transitions
// Packed -> Shipped and downstream systems are notified after the commit.
// Shipped is terminal; the order record is retained indefinitely.
type ShipOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	publisher  ports.NotificationPublisher
}

// NewShipOrderCommandHandler creates a handler for ship operations.
func NewShipOrderCommandHandler(
	uowFactory LifecycleUoWFactory,
	publisher ports.NotificationPublisher,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the ship command.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Ship(cmd.ActorID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.AuditRepository().AppendStateChanges(ctx, aggregate.TakeStateChanges()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishOrderShipped(ctx, aggregate.ID())
}
