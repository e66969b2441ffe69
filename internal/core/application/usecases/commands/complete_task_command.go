package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteTaskCommandIsNotConstructed = errors.New(
	"CompleteTaskCommand must be created via NewCompleteTaskCommand constructor",
)

// CompleteTaskCommand represents a picker reporting a finished pick task with
// the quantity actually retrieved from the bin.
type CompleteTaskCommand struct { //nolint:recvcheck //using for validation
	taskID         kernel.UUID
	pickerID       kernel.UUID
	pickedQuantity int

	guard guard.ConstructorGuard
}

// NewCompleteTaskCommand creates a command to complete a pick task.
// The picked quantity must be positive; over-picks are rejected later against
// the task's requested quantity.
func NewCompleteTaskCommand(taskID, pickerID kernel.UUID, pickedQuantity int) (CompleteTaskCommand, error) {
	cmd := CompleteTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setPickerID(pickerID),
		cmd.setPickedQuantity(pickedQuantity),
	); err != nil {
		return CompleteTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaskCommandIsNotConstructed)
}

// TaskID returns the task being completed.
func (c CompleteTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// PickerID returns the reporting picker.
func (c CompleteTaskCommand) PickerID() kernel.UUID {
	return c.pickerID
}

// PickedQuantity returns the quantity actually picked.
func (c CompleteTaskCommand) PickedQuantity() int {
	return c.pickedQuantity
}

func (c *CompleteTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *CompleteTaskCommand) setPickerID(pickerID kernel.UUID) error {
	if err := pickerID.Validate(); err != nil {
		return err
	}

	c.pickerID = pickerID
	return nil
}

func (c *CompleteTaskCommand) setPickedQuantity(pickedQuantity int) error {
	if pickedQuantity <= 0 {
		return errs.NewValueIsInvalidError("pickedQuantity")
	}

	c.pickedQuantity = pickedQuantity
	return nil
}
