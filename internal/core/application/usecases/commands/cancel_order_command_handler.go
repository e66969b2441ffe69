package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picktask"
)

const cancelSkipReason = "order cancelled"

// CancelOrderCommandHandler handles order cancellation from any non-terminal
// status. Open pick tasks are skipped and their reservations released back to
// available stock; quantities already deducted by completed tasks stay
// deducted, their return to shelf is a manual restock outside this system.
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancel operations.
func NewCancelOrderCommandHandler(uowFactory FulfillmentUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(cmd.ActorID()); err != nil {
		return err
	}

	// Tasks come back in bin code order, so the unit locks below are
	// acquired in the same sequence as every other workflow.
	tasks, err := uow.PickTaskRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if task.Status().IsTerminal() {
			continue
		}
		if err = h.abandonTask(ctx, uow, task, cmd.ActorID()); err != nil {
			return err
		}
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

	return nil
}

func (h CancelOrderCommandHandler) abandonTask(
	ctx context.Context,
	uow FulfillmentUoW,
	task *picktask.Task,
	actorID kernel.UUID,
) error {
	unit, err := uow.InventoryRepository().GetForUpdate(ctx, task.SKUID(), task.BinCode())
	if err != nil {
		return err
	}

	if err = task.Skip(cancelSkipReason); err != nil {
		return err
	}

	if err = unit.Release(task.Quantity()); err != nil {
		return err
	}

	orderID := task.OrderID()
	record, err := inventory.NewTransaction(
		kernel.NewUUID(), inventory.TransactionTypeCancellation,
		task.SKUID(), task.BinCode(), -task.Quantity(), &orderID, actorID, cancelSkipReason)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().AppendTransaction(ctx, record); err != nil {
		return err
	}

	if err = uow.PickTaskRepository().Update(ctx, task); err != nil {
		return err
	}

	return uow.InventoryRepository().Update(ctx, unit)
}
