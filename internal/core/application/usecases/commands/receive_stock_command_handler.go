package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ReceiveStockCommandHandler handles inbound stock. The SKU and the bin must
// exist in the catalog; the unit for the pair is created on first receipt and
// topped up afterwards, with one Receipt record per delivery.
type ReceiveStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewReceiveStockCommandHandler creates a handler for stock receipt operations.
func NewReceiveStockCommandHandler(uowFactory InventoryUoWFactory) ReceiveStockCommandHandler {
	return ReceiveStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt command.
func (h ReceiveStockCommandHandler) Handle(ctx context.Context, cmd ReceiveStockCommand) error {
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

	if _, err := uow.SKURepository().Get(ctx, cmd.SKUID()); err != nil {
		return err
	}
	if _, err := uow.BinLocationRepository().Get(ctx, cmd.BinCode()); err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()

	unit, err := inventoryRepo.GetForUpdate(ctx, cmd.SKUID(), cmd.BinCode())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		unit, err = inventory.NewUnit(kernel.NewUUID(), cmd.SKUID(), cmd.BinCode(), cmd.Quantity())
		if err != nil {
			return err
		}
		if err = inventoryRepo.Add(ctx, unit); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = unit.Adjust(cmd.Quantity()); err != nil {
			return err
		}
		if err = inventoryRepo.Update(ctx, unit); err != nil {
			return err
		}
	}

	record, err := inventory.NewTransaction(
		kernel.NewUUID(), inventory.TransactionTypeReceipt,
		cmd.SKUID(), cmd.BinCode(), cmd.Quantity(), nil, cmd.ActorID(), "stock receipt")
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
