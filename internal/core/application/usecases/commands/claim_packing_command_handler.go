package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// ClaimPackingCommandHandler handles packing claims. A packer may only work
// a limited number of orders at once; the claim transitions the order
// Picked -> Packing under its row lock.
type ClaimPackingCommandHandler struct {
	uowFactory         LifecycleUoWFactory
	maxOrdersPerPacker int
}

// NewClaimPackingCommandHandler creates a handler for packing claim operations.
// maxOrdersPerPacker caps how many orders a packer may work on at once.
func NewClaimPackingCommandHandler(uowFactory LifecycleUoWFactory, maxOrdersPerPacker int) ClaimPackingCommandHandler {
	return ClaimPackingCommandHandler{
		uowFactory:         uowFactory,
		maxOrdersPerPacker: maxOrdersPerPacker,
	}
}

// Handle processes the packing claim command.
func (h ClaimPackingCommandHandler) Handle(ctx context.Context, cmd ClaimPackingCommand) error {
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

	active, err := orderRepo.CountActiveByPacker(ctx, cmd.PackerID())
	if err != nil {
		return err
	}
	if active >= h.maxOrdersPerPacker {
		return errs.NewCapacityExceededError(cmd.PackerID().String(), active, h.maxOrdersPerPacker)
	}

	if err = aggregate.ClaimForPacking(cmd.PackerID()); err != nil {
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

	return nil
}
