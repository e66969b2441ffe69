package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// SkipTaskCommandHandler handles pick task skips. The task's full reservation
// is released back to available stock with a Cancellation record; no stock is
// deducted and the parent order's progress does not move. Skipped tasks
// surface as exceptions for supervisor review.
type SkipTaskCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewSkipTaskCommandHandler creates a handler for task skip operations.
func NewSkipTaskCommandHandler(uowFactory FulfillmentUoWFactory) SkipTaskCommandHandler {
	return SkipTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the skip command.
func (h SkipTaskCommandHandler) Handle(ctx context.Context, cmd SkipTaskCommand) error {
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

	taskRepo := uow.PickTaskRepository()

	task, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}
	if !task.PickerID().IsEqual(cmd.PickerID()) {
		return ErrTaskNotAssignedToPicker
	}

	// Lock the order row before the unit row, same as claim and complete.
	if _, err = uow.OrderRepository().GetForUpdate(ctx, task.OrderID()); err != nil {
		return err
	}

	unit, err := uow.InventoryRepository().GetForUpdate(ctx, task.SKUID(), task.BinCode())
	if err != nil {
		return err
	}

	if err = task.Skip(cmd.Reason()); err != nil {
		return err
	}

	if err = unit.Release(task.Quantity()); err != nil {
		return err
	}

	orderID := task.OrderID()
	record, err := inventory.NewTransaction(
		kernel.NewUUID(), inventory.TransactionTypeCancellation,
		task.SKUID(), task.BinCode(), -task.Quantity(), &orderID, cmd.PickerID(), cmd.Reason())
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().AppendTransaction(ctx, record); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, task); err != nil {
		return err
	}
	if err = uow.InventoryRepository().Update(ctx, unit); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
