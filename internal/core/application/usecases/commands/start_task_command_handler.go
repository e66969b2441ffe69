package commands

import (
	"context"
)

// StartTaskCommandHandler marks a pick task in progress. No inventory moves;
// the transition only records that the picker is at the bin, which feeds the
// picker's task list and supervisor views.
type StartTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewStartTaskCommandHandler creates a handler for task start operations.
func NewStartTaskCommandHandler(uowFactory TaskUoWFactory) StartTaskCommandHandler {
	return StartTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
func (h StartTaskCommandHandler) Handle(ctx context.Context, cmd StartTaskCommand) error {
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

	taskRepo := uow.PickTaskRepository()

	task, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}
	if !task.PickerID().IsEqual(cmd.PickerID()) {
		return ErrTaskNotAssignedToPicker
	}

	if err = task.Start(); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, task); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
