package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ReleaseBackordersCommandHandler sweeps orders waiting in Backorder and
// moves back to Pending every order that the planner can now fully cover.
// No reservations are made here; allocation happens when a picker claims the
// released order, which may legitimately backorder it again if stock moved
// in between.
type ReleaseBackordersCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewReleaseBackordersCommandHandler creates a handler for backorder sweeps.
func NewReleaseBackordersCommandHandler(uowFactory FulfillmentUoWFactory) ReleaseBackordersCommandHandler {
	return ReleaseBackordersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. Orders that still cannot be covered
// stay in Backorder; only genuine planning failures abort the sweep.
func (h ReleaseBackordersCommandHandler) Handle(ctx context.Context, cmd ReleaseBackordersCommand) error {
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

	backordered, err := orderRepo.GetAllInStatus(ctx, order.StatusBackorder)
	if err != nil {
		return err
	}

	planner := services.NewTaskPlanner()
	for _, candidate := range backordered {
		// The candidate list is an unlocked snapshot. Re-read each order
		// under its row lock and skip it when a concurrent transition
		// (cancel, claim) got there first.
		aggregate, err := orderRepo.GetForUpdate(ctx, candidate.ID())
		if err != nil {
			return err
		}
		if aggregate.Status() != order.StatusBackorder {
			continue
		}

		// Availability check only; the sweep reserves nothing, so the unit
		// rows stay unlocked and concurrent claims are not serialized.
		units, err := uow.InventoryRepository().GetBySKU(ctx, orderSKUIDs(aggregate))
		if err != nil {
			return err
		}

		if _, err = planner.Plan(aggregate, groupBySKU(units)); err != nil {
			if errors.Is(err, errs.ErrInsufficientAvailability) {
				continue
			}
			return err
		}

		if err = aggregate.ReleaseBackorder(cmd.ActorID()); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		if err = uow.AuditRepository().AppendStateChanges(ctx, aggregate.TakeStateChanges()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
