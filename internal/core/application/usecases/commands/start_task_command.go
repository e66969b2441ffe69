package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrStartTaskCommandIsNotConstructed = errors.New(
	"StartTaskCommand must be created via NewStartTaskCommand constructor",
)

// StartTaskCommand represents a picker beginning work on a pick task at its
// bin, so that supervisors can tell queued tasks from tasks in progress.
type StartTaskCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	pickerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTaskCommand creates a command to start a pick task.
func NewStartTaskCommand(taskID, pickerID kernel.UUID) (StartTaskCommand, error) {
	cmd := StartTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setPickerID(pickerID),
	); err != nil {
		return StartTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTaskCommand) Validate() error {
	return c.guard.Validate(ErrStartTaskCommandIsNotConstructed)
}

// TaskID returns the task being started.
func (c StartTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// PickerID returns the picker starting the task.
func (c StartTaskCommand) PickerID() kernel.UUID {
	return c.pickerID
}

func (c *StartTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *StartTaskCommand) setPickerID(pickerID kernel.UUID) error {
	if err := pickerID.Validate(); err != nil {
		return err
	}

	c.pickerID = pickerID
	return nil
}
