package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSkipTaskCommandIsNotConstructed = errors.New(
	"SkipTaskCommand must be created via NewSkipTaskCommand constructor",
)

// SkipTaskCommand represents a picker abandoning a pick task with a mandatory
// reason, for example a blocked aisle or damaged stock.
type SkipTaskCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	pickerID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewSkipTaskCommand creates a command to skip a pick task.
func NewSkipTaskCommand(taskID, pickerID kernel.UUID, reason string) (SkipTaskCommand, error) {
	cmd := SkipTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setPickerID(pickerID),
		cmd.setReason(reason),
	); err != nil {
		return SkipTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SkipTaskCommand) Validate() error {
	return c.guard.Validate(ErrSkipTaskCommandIsNotConstructed)
}

// TaskID returns the task being skipped.
func (c SkipTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// PickerID returns the reporting picker.
func (c SkipTaskCommand) PickerID() kernel.UUID {
	return c.pickerID
}

// Reason returns the mandatory skip justification.
func (c SkipTaskCommand) Reason() string {
	return c.reason
}

func (c *SkipTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *SkipTaskCommand) setPickerID(pickerID kernel.UUID) error {
	if err := pickerID.Validate(); err != nil {
		return err
	}

	c.pickerID = pickerID
	return nil
}

func (c *SkipTaskCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
