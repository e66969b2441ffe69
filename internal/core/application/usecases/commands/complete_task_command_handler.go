package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// ErrTaskNotAssignedToPicker is returned when a picker reports a task that
// belongs to another picker.
var ErrTaskNotAssignedToPicker = errors.New("task is assigned to another picker")

// CompleteTaskCommandHandler handles pick task completion: it deducts the
// picked stock, releases the reservation remainder on short picks, advances
// the parent order's item progress, and reports the deduction to accounting.
//
// Lock order inside the transaction is the order row first, then the unit
// row, matching the claim workflow.
type CompleteTaskCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	accounting ports.AccountingRecorder
}

// NewCompleteTaskCommandHandler creates a handler for task completion operations.
func NewCompleteTaskCommandHandler(
	uowFactory FulfillmentUoWFactory,
	accounting ports.AccountingRecorder,
) CompleteTaskCommandHandler {
	return CompleteTaskCommandHandler{
		uowFactory: uowFactory,
		accounting: accounting,
	}
}

// Handle processes the task completion command.
//
// A short pick (picked < requested) completes the task all the same: the
// picked amount is deducted, the uncovered remainder of the reservation is
// released with a Cancellation record, and the order item stays partially
// picked for supervisor follow-up. Once every item of the order is fully
// picked the order auto-advances to Picked.
func (h CompleteTaskCommandHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) error {
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
	orderRepo := uow.OrderRepository()
	inventoryRepo := uow.InventoryRepository()
	auditRepo := uow.AuditRepository()

	task, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}
	if !task.PickerID().IsEqual(cmd.PickerID()) {
		return ErrTaskNotAssignedToPicker
	}

	aggregate, err := orderRepo.GetForUpdate(ctx, task.OrderID())
	if err != nil {
		return err
	}

	unit, err := inventoryRepo.GetForUpdate(ctx, task.SKUID(), task.BinCode())
	if err != nil {
		return err
	}

	requested := task.Quantity()
	if err = task.Complete(cmd.PickedQuantity()); err != nil {
		return err
	}

	if err = unit.Deduct(cmd.PickedQuantity()); err != nil {
		return err
	}

	orderID := aggregate.ID()
	record, err := inventory.NewTransaction(
		kernel.NewUUID(), inventory.TransactionTypeDeduction,
		task.SKUID(), task.BinCode(), -cmd.PickedQuantity(), &orderID, cmd.PickerID(), "pick")
	if err != nil {
		return err
	}
	if err = auditRepo.AppendTransaction(ctx, record); err != nil {
		return err
	}

	if remainder := requested - cmd.PickedQuantity(); remainder > 0 {
		if err = h.releaseRemainder(ctx, uow, task.SKUID(), unit, remainder, orderID, cmd.PickerID()); err != nil {
			return err
		}
	}

	if err = aggregate.ApplyPick(cmd.PickerID(), task.OrderItemID(), cmd.PickedQuantity()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, task); err != nil {
		return err
	}
	if err = inventoryRepo.Update(ctx, unit); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = auditRepo.AppendStateChanges(ctx, aggregate.TakeStateChanges()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.accounting.RecordDeduction(ctx, orderID, task.SKUID(), cmd.PickedQuantity())
}

func (h CompleteTaskCommandHandler) releaseRemainder(
	ctx context.Context,
	uow FulfillmentUoW,
	skuID kernel.UUID,
	unit *inventory.Unit,
	remainder int,
	orderID kernel.UUID,
	actorID kernel.UUID,
) error {
	if err := unit.Release(remainder); err != nil {
		return err
	}

	record, err := inventory.NewTransaction(
		kernel.NewUUID(), inventory.TransactionTypeCancellation,
		skuID, unit.BinCode(), -remainder, &orderID, actorID, "short pick")
	if err != nil {
		return err
	}

	return uow.AuditRepository().AppendTransaction(ctx, record)
}
