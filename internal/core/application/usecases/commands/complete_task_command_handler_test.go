package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picktask"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type completeFixture struct {
	aggregate *order.Order
	task      *picktask.Task
	unit      *inventory.Unit
	picker    kernel.UUID
}

// picking order with one item of quantity 5, a matching task, and a unit
// holding the reservation made at claim time.
func newCompleteFixture(t *testing.T) completeFixture {
	t.Helper()
	skuID := kernel.NewUUID()
	aggregate := newPendingOrder(t, skuID, 5)
	picker := kernel.NewUUID()
	require.NoError(t, aggregate.Claim(picker))
	aggregate.TakeStateChanges()

	code, err := kernel.ParseBinCode("A-01-01")
	require.NoError(t, err)
	task, err := picktask.NewTask(kernel.NewUUID(), aggregate.ID(),
		aggregate.Items()[0].ID(), skuID, code, 5, picker)
	require.NoError(t, err)

	unit, err := inventory.RestoreUnit(kernel.NewUUID(), skuID, code, 10, 5)
	require.NoError(t, err)

	return completeFixture{aggregate: aggregate, task: task, unit: unit, picker: picker}
}

func TestCompleteTaskCommandHandler_Handle_FullPick(t *testing.T) {
	ctx := t.Context()
	f := newCompleteFixture(t)

	orderRepo := new(MockOrderRepository)
	invRepo := new(MockInventoryRepository)
	taskRepo := new(MockPickTaskRepository)
	auditRepo := new(MockAuditRepository)
	uow, factory := newFulfillmentUoW(orderRepo, invRepo, taskRepo, auditRepo)

	uow.On("Begin", ctx).Return(nil).Once()
	taskRepo.On("Get", ctx, f.task.ID()).Return(f.task, nil).Once()
	orderRepo.On("GetForUpdate", ctx, f.aggregate.ID()).Return(f.aggregate, nil).Once()
	invRepo.On("GetForUpdate", ctx, f.task.SKUID(), f.task.BinCode()).Return(f.unit, nil).Once()
	auditRepo.On("AppendTransaction", ctx, mock.AnythingOfType("*inventory.Transaction")).
		Return(nil).Once()
	taskRepo.On("Update", ctx, f.task).Return(nil).Once()
	invRepo.On("Update", ctx, f.unit).Return(nil).Once()
	orderRepo.On("Update", ctx, f.aggregate).Return(nil).Once()
	auditRepo.On("AppendStateChanges", ctx, mock.AnythingOfType("[]*order.StateChange")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	accounting := new(MockAccountingRecorder)
	accounting.On("RecordDeduction", ctx, f.aggregate.ID(), f.task.SKUID(), 5).Return(nil).Once()

	h := commands.NewCompleteTaskCommandHandler(factory, accounting)
	cmd, err := commands.NewCompleteTaskCommand(f.task.ID(), f.picker, 5)
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, picktask.StatusCompleted, f.task.Status())
	assert.Equal(t, 5, f.unit.Quantity())
	assert.Equal(t, 0, f.unit.Reserved())
	assert.Equal(t, order.StatusPicked, f.aggregate.Status())
	assert.Equal(t, 100, f.aggregate.Progress())
	accounting.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestCompleteTaskCommandHandler_Handle_ShortPickReleasesRemainder(t *testing.T) {
	ctx := t.Context()
	f := newCompleteFixture(t)

	orderRepo := new(MockOrderRepository)
	invRepo := new(MockInventoryRepository)
	taskRepo := new(MockPickTaskRepository)
	auditRepo := new(MockAuditRepository)
	uow, factory := newFulfillmentUoW(orderRepo, invRepo, taskRepo, auditRepo)

	uow.On("Begin", ctx).Return(nil).Once()
	taskRepo.On("Get", ctx, f.task.ID()).Return(f.task, nil).Once()
	orderRepo.On("GetForUpdate", ctx, f.aggregate.ID()).Return(f.aggregate, nil).Once()
	invRepo.On("GetForUpdate", ctx, f.task.SKUID(), f.task.BinCode()).Return(f.unit, nil).Once()
	// one Deduction record plus one Cancellation record for the remainder
	auditRepo.On("AppendTransaction", ctx, mock.AnythingOfType("*inventory.Transaction")).
		Return(nil).Twice()
	taskRepo.On("Update", ctx, f.task).Return(nil).Once()
	invRepo.On("Update", ctx, f.unit).Return(nil).Once()
	orderRepo.On("Update", ctx, f.aggregate).Return(nil).Once()
	auditRepo.On("AppendStateChanges", ctx, mock.AnythingOfType("[]*order.StateChange")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	accounting := new(MockAccountingRecorder)
	accounting.On("RecordDeduction", ctx, f.aggregate.ID(), f.task.SKUID(), 3).Return(nil).Once()

	h := commands.NewCompleteTaskCommandHandler(factory, accounting)
	cmd, err := commands.NewCompleteTaskCommand(f.task.ID(), f.picker, 3)
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 3, f.task.PickedQuantity())
	assert.Equal(t, 7, f.unit.Quantity())
	assert.Equal(t, 0, f.unit.Reserved())
	// item partially picked, order stays in Picking
	assert.Equal(t, order.StatusPicking, f.aggregate.Status())
	assert.Equal(t, 60, f.aggregate.Progress())
	auditRepo.AssertExpectations(t)
}

func TestCompleteTaskCommandHandler_Handle_WrongPicker(t *testing.T) {
	ctx := t.Context()
	f := newCompleteFixture(t)

	taskRepo := new(MockPickTaskRepository)
	uow, factory := newFulfillmentUoW(new(MockOrderRepository), new(MockInventoryRepository),
		taskRepo, new(MockAuditRepository))

	uow.On("Begin", ctx).Return(nil).Once()
	taskRepo.On("Get", ctx, f.task.ID()).Return(f.task, nil).Once()

	h := commands.NewCompleteTaskCommandHandler(factory, new(MockAccountingRecorder))
	cmd, err := commands.NewCompleteTaskCommand(f.task.ID(), kernel.NewUUID(), 5)
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrTaskNotAssignedToPicker)
	assert.Equal(t, picktask.StatusPending, f.task.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
