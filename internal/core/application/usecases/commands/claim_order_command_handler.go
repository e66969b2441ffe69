package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picktask"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderBackordered is returned when a claim could not be satisfied from
// stock. The order was moved to Backorder and will return to the queue once
// inventory arrives; this is a business outcome, not a failure to act on.
var ErrOrderBackordered = errors.New("order moved to backorder waiting for stock")

// ClaimOrderCommandHandler orchestrates the claim workflow: capacity check,
// allocation planning, reservations, and pick task creation, all in one
// database transaction holding the order's row lock.
//
// The losing side of a concurrent claim race observes the winner's committed
// status once the lock is granted and fails with errs.ErrAlreadyClaimed.
type ClaimOrderCommandHandler struct {
	uowFactory         FulfillmentUoWFactory
	publisher          ports.NotificationPublisher
	maxOrdersPerPicker int
}

// NewClaimOrderCommandHandler creates a handler for order claim operations.
// maxOrdersPerPicker caps how many orders a picker may work on at once.
func NewClaimOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.NotificationPublisher,
	maxOrdersPerPicker int,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory:         uowFactory,
		publisher:          publisher,
		maxOrdersPerPicker: maxOrdersPerPicker,
	}
}

// Handle processes the claim command.
//
// When every item can be allocated, the order transitions to Picking, the
// planned quantities are reserved with one Reservation record per bin, and
// one pick task per plan entry is created. When allocation fails the order
// transitions to Backorder instead and ErrOrderBackordered is returned; no
// reservations are kept from a failed plan.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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
	if aggregate.Status() != order.StatusPending {
		return errs.NewAlreadyClaimedError(aggregate.ID().String(), aggregate.Status().String())
	}

	active, err := orderRepo.CountActiveByPicker(ctx, cmd.PickerID())
	if err != nil {
		return err
	}
	if active >= h.maxOrdersPerPicker {
		return errs.NewCapacityExceededError(cmd.PickerID().String(), active, h.maxOrdersPerPicker)
	}

	units, err := lockOrderInventory(ctx, uow.InventoryRepository(), aggregate)
	if err != nil {
		return err
	}

	plan, err := services.NewTaskPlanner().Plan(aggregate, groupBySKU(units))
	if errors.Is(err, errs.ErrInsufficientAvailability) {
		return h.backorder(ctx, uow, aggregate, cmd.PickerID())
	}
	if err != nil {
		return err
	}

	if err = aggregate.Claim(cmd.PickerID()); err != nil {
		return err
	}

	if err = h.reserveAndCreateTasks(ctx, uow, aggregate, plan, units, cmd.PickerID()); err != nil {
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

// lockOrderInventory loads and row-locks every unit that could source the
// order. The repository returns units in ascending bin code order, so
// concurrent claims acquire unit locks in the same sequence.
func lockOrderInventory(
	ctx context.Context,
	inventoryRepo ports.InventoryRepository,
	aggregate *order.Order,
) ([]*inventory.Unit, error) {
	return inventoryRepo.GetBySKUForUpdate(ctx, orderSKUIDs(aggregate))
}

// orderSKUIDs collects the distinct SKUs referenced by the order's items.
func orderSKUIDs(aggregate *order.Order) []kernel.UUID {
	seen := make(map[string]bool)
	var skuIDs []kernel.UUID
	for _, item := range aggregate.Items() {
		if !seen[item.SKUID().String()] {
			seen[item.SKUID().String()] = true
			skuIDs = append(skuIDs, item.SKUID())
		}
	}
	return skuIDs
}

func (h ClaimOrderCommandHandler) reserveAndCreateTasks(
	ctx context.Context,
	uow FulfillmentUoW,
	aggregate *order.Order,
	plan []services.PlannedPick,
	units []*inventory.Unit,
	pickerID kernel.UUID,
) error {
	inventoryRepo := uow.InventoryRepository()
	taskRepo := uow.PickTaskRepository()
	auditRepo := uow.AuditRepository()
	orderID := aggregate.ID()

	for _, pick := range plan {
		unit := findUnit(units, pick.SKUID, pick.BinCode)
		if unit == nil {
			return errs.NewObjectNotFoundError("inventoryUnit", pick.BinCode.String())
		}
		if err := unit.Reserve(pick.Quantity); err != nil {
			return err
		}
		if err := inventoryRepo.Update(ctx, unit); err != nil {
			return err
		}

		record, err := inventory.NewTransaction(
			kernel.NewUUID(), inventory.TransactionTypeReservation,
			pick.SKUID, pick.BinCode, pick.Quantity, &orderID, pickerID, "order claim")
		if err != nil {
			return err
		}
		if err = auditRepo.AppendTransaction(ctx, record); err != nil {
			return err
		}

		task, err := picktask.NewTask(
			kernel.NewUUID(), orderID, pick.OrderItemID,
			pick.SKUID, pick.BinCode, pick.Quantity, pickerID)
		if err != nil {
			return err
		}
		if err = taskRepo.Add(ctx, task); err != nil {
			return err
		}
	}

	return nil
}

// backorder commits the Pending -> Backorder transition and announces it.
// The rollback of failed reservations is implicit: nothing was written yet
// when planning fails.
func (h ClaimOrderCommandHandler) backorder(
	ctx context.Context,
	uow FulfillmentUoW,
	aggregate *order.Order,
	actorID kernel.UUID,
) error {
	if err := aggregate.MarkBackordered(actorID); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.AuditRepository().AppendStateChanges(ctx, aggregate.TakeStateChanges()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := h.publisher.PublishOrderBackordered(ctx, aggregate.ID()); err != nil {
		return err
	}

	return ErrOrderBackordered
}

func groupBySKU(units []*inventory.Unit) map[string][]*inventory.Unit {
	grouped := make(map[string][]*inventory.Unit, len(units))
	for _, unit := range units {
		key := unit.SKUID().String()
		grouped[key] = append(grouped[key], unit)
	}
	return grouped
}

func findUnit(units []*inventory.Unit, skuID kernel.UUID, binCode kernel.BinCode) *inventory.Unit {
	for _, unit := range units {
		if unit.SKUID().IsEqual(skuID) && unit.BinCode().IsEqual(binCode) {
			return unit
		}
	}
	return nil
}
