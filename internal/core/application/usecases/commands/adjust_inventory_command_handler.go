package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// AdjustInventoryCommandHandler handles administrative stock corrections
// under the unit's row lock. The correction may not drive on-hand stock
// negative or below the reserved quantity.
type AdjustInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAdjustInventoryCommandHandler creates a handler for adjustment operations.
func NewAdjustInventoryCommandHandler(uowFactory InventoryUoWFactory) AdjustInventoryCommandHandler {
	return AdjustInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the adjustment command.
func (h AdjustInventoryCommandHandler) Handle(ctx context.Context, cmd AdjustInventoryCommand) error {
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

	inventoryRepo := uow.InventoryRepository()

	unit, err := inventoryRepo.GetForUpdate(ctx, cmd.SKUID(), cmd.BinCode())
	if err != nil {
		return err
	}

	if err = unit.Adjust(cmd.Delta()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, unit); err != nil {
		return err
	}

	record, err := inventory.NewTransaction(
		kernel.NewUUID(), inventory.TransactionTypeAdjustment,
		cmd.SKUID(), cmd.BinCode(), cmd.Delta(), nil, cmd.ActorID(), cmd.Reason())
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().AppendTransaction(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
