// Package picktask contains the PickTask aggregate: one worker-executable
// unit of retrieving a quantity of one SKU from one bin for one order item.
// Tasks are created when an order is claimed, one per (item, contributing
// bin) pair, and are immutable once completed or skipped.
package picktask

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task instance was not
	// created through NewTask or RestoreTask.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

	// ErrSkipReasonIsRequired is returned when skipping a task without a reason.
	ErrSkipReasonIsRequired = errs.NewValueIsRequiredError("skip reason")
)

// Task is one unit of pickable work: a quantity of one SKU to retrieve from
// one bin for one order item. The claiming transaction reserves the task's
// quantity at its bin; completing the task consumes that reservation,
// skipping it releases it.
//
// Invariant: pickedQuantity ≤ quantity. A terminal task never changes.
type Task struct {
	id             kernel.UUID
	orderID        kernel.UUID
	orderItemID    kernel.UUID
	skuID          kernel.UUID
	binCode        kernel.BinCode
	quantity       int
	pickedQuantity int
	status         Status
	pickerID       kernel.UUID
	startedAt      *time.Time
	completedAt    *time.Time
	skippedAt      *time.Time
	skipReason     string

	isConstructed bool
}

// NewTask creates a pending task for the given order item, bin, and quantity,
// assigned to the picker who claimed the parent order.
func NewTask(
	id kernel.UUID,
	orderID kernel.UUID,
	orderItemID kernel.UUID,
	skuID kernel.UUID,
	binCode kernel.BinCode,
	quantity int,
	pickerID kernel.UUID,
) (*Task, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		orderItemID.Validate(),
		skuID.Validate(),
		binCode.Validate(),
		pickerID.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Task{
		id:            id,
		orderID:       orderID,
		orderItemID:   orderItemID,
		skuID:         skuID,
		binCode:       binCode,
		quantity:      quantity,
		status:        StatusPending,
		pickerID:      pickerID,
		isConstructed: true,
	}, nil
}

// RestoreTask reconstructs a task from persistence.
func RestoreTask(
	id kernel.UUID,
	orderID kernel.UUID,
	orderItemID kernel.UUID,
	skuID kernel.UUID,
	binCode kernel.BinCode,
	quantity, pickedQuantity int,
	status Status,
	pickerID kernel.UUID,
	startedAt, completedAt, skippedAt *time.Time,
	skipReason string,
) (*Task, error) {
	task, err := NewTask(id, orderID, orderItemID, skuID, binCode, quantity, pickerID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if pickedQuantity < 0 || pickedQuantity > quantity {
		return nil, errs.NewValueIsInvalidErrorWithCause("pickedQuantity",
			fmt.Errorf("%d is not in range [0..%d]", pickedQuantity, quantity))
	}

	task.status = status
	task.pickedQuantity = pickedQuantity
	task.startedAt = startedAt
	task.completedAt = completedAt
	task.skippedAt = skippedAt
	task.skipReason = skipReason
	return task, nil
}

// Validate ensures the task was created through a constructor.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// OrderID returns the parent order.
func (t *Task) OrderID() kernel.UUID {
	return t.orderID
}

// OrderItemID returns the order line this task contributes to.
func (t *Task) OrderItemID() kernel.UUID {
	return t.orderItemID
}

// SKUID returns the SKU to pick.
func (t *Task) SKUID() kernel.UUID {
	return t.skuID
}

// BinCode returns the slot code of the source bin.
func (t *Task) BinCode() kernel.BinCode {
	return t.binCode
}

// Quantity returns the requested quantity.
func (t *Task) Quantity() int {
	return t.quantity
}

// PickedQuantity returns the quantity actually picked.
func (t *Task) PickedQuantity() int {
	return t.pickedQuantity
}

// Status returns the task's lifecycle status.
func (t *Task) Status() Status {
	return t.status
}

// PickerID returns the assigned picker.
func (t *Task) PickerID() kernel.UUID {
	return t.pickerID
}

// StartedAt returns when the picker started the task, if they did.
func (t *Task) StartedAt() *time.Time {
	return t.startedAt
}

// CompletedAt returns when the task was completed, if it was.
func (t *Task) CompletedAt() *time.Time {
	return t.completedAt
}

// SkippedAt returns when the task was skipped, if it was.
func (t *Task) SkippedAt() *time.Time {
	return t.skippedAt
}

// SkipReason returns the mandatory reason recorded on skip.
func (t *Task) SkipReason() string {
	return t.skipReason
}

// Start marks the task in progress. Legal only from Pending.
func (t *Task) Start() error {
	if t.status != StatusPending {
		return errs.NewInvalidStateTransitionError("pick task",
			t.status.String(), StatusInProgress.String())
	}

	t.status = StatusInProgress
	now := time.Now().UTC()
	t.startedAt = &now
	return nil
}

// Complete records the picked quantity and finishes the task. Rejects
// quantities above the requested amount with ErrOverPick. A quantity below
// the requested amount is a legal short pick; the caller releases the
// uncovered remainder of the reservation.
func (t *Task) Complete(pickedQuantity int) error {
	if t.status.IsTerminal() {
		return errs.NewInvalidStateTransitionError("pick task",
			t.status.String(), StatusCompleted.String())
	}
	if pickedQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pickedQuantity",
			fmt.Errorf("%d is not greater than 0", pickedQuantity))
	}
	if pickedQuantity > t.quantity {
		return errs.NewOverPickError(t.id.String(), pickedQuantity, t.quantity)
	}

	t.pickedQuantity = pickedQuantity
	t.status = StatusCompleted
	now := time.Now().UTC()
	t.completedAt = &now
	return nil
}

// Skip abandons the task with a mandatory reason. No inventory is deducted;
// the caller releases the task's reservation. Skipped tasks surface as
// exceptions for supervisor review.
func (t *Task) Skip(reason string) error {
	if t.status.IsTerminal() {
		return errs.NewInvalidStateTransitionError("pick task",
			t.status.String(), StatusSkipped.String())
	}
	if reason == "" {
		return ErrSkipReasonIsRequired
	}

	t.status = StatusSkipped
	t.skipReason = reason
	now := time.Now().UTC()
	t.skippedAt = &now
	return nil
}
