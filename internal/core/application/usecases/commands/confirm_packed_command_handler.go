package commands

import (
	"context"
)

// ConfirmPackedCommandHandler handles pack confirmation, transitioning the
// order Packing -> Packed under its row lock.
type ConfirmPackedCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewConfirmPackedCommandHandler creates a handler for pack confirmation operations.
func NewConfirmPackedCommandHandler(uowFactory LifecycleUoWFactory) ConfirmPackedCommandHandler {
	return ConfirmPackedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pack confirmation command.
func (h ConfirmPackedCommandHandler) Handle(ctx context.Context, cmd ConfirmPackedCommand) error {
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

	if err = aggregate.MarkPacked(cmd.PackerID()); err != nil {
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
