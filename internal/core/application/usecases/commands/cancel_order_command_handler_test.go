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

// Scenario: an order cancelled mid-picking. The completed task's deduction
// stands; the open task's reservation is released back to available stock.
func TestCancelOrderCommandHandler_Handle_MidPicking(t *testing.T) {
	ctx := t.Context()
	skuID := kernel.NewUUID()
	aggregate := newPendingOrder(t, skuID, 5)
	picker := kernel.NewUUID()
	require.NoError(t, aggregate.Claim(picker))
	aggregate.TakeStateChanges()

	codeA, err := kernel.ParseBinCode("A-01-01")
	require.NoError(t, err)
	codeB, err := kernel.ParseBinCode("B-01-01")
	require.NoError(t, err)

	itemID := aggregate.Items()[0].ID()
	doneTask, err := picktask.NewTask(kernel.NewUUID(), aggregate.ID(), itemID, skuID, codeA, 2, picker)
	require.NoError(t, err)
	require.NoError(t, doneTask.Complete(2))
	openTask, err := picktask.NewTask(kernel.NewUUID(), aggregate.ID(), itemID, skuID, codeB, 3, picker)
	require.NoError(t, err)

	// bin B still carries the open task's reservation
	unitB, err := inventory.RestoreUnit(kernel.NewUUID(), skuID, codeB, 10, 3)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	invRepo := new(MockInventoryRepository)
	taskRepo := new(MockPickTaskRepository)
	auditRepo := new(MockAuditRepository)
	uow, factory := newFulfillmentUoW(orderRepo, invRepo, taskRepo, auditRepo)

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	taskRepo.On("GetByOrder", ctx, aggregate.ID()).
		Return([]*picktask.Task{doneTask, openTask}, nil).Once()
	invRepo.On("GetForUpdate", ctx, skuID, codeB).Return(unitB, nil).Once()
	auditRepo.On("AppendTransaction", ctx, mock.AnythingOfType("*inventory.Transaction")).
		Return(nil).Once()
	taskRepo.On("Update", ctx, openTask).Return(nil).Once()
	invRepo.On("Update", ctx, unitB).Return(nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	auditRepo.On("AppendStateChanges", ctx, mock.AnythingOfType("[]*order.StateChange")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), picker)
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusCancelled, aggregate.Status())
	assert.Equal(t, picktask.StatusSkipped, openTask.Status())
	assert.Equal(t, picktask.StatusCompleted, doneTask.Status())
	assert.Equal(t, 0, unitB.Reserved())
	assert.Equal(t, 10, unitB.Quantity())
	// the completed task's bin was never touched
	invRepo.AssertNotCalled(t, "GetForUpdate", ctx, skuID, codeA)
	orderRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	invRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ShippedOrderCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	skuID := kernel.NewUUID()
	aggregate := newPendingOrder(t, skuID, 2)
	picker := kernel.NewUUID()
	require.NoError(t, aggregate.Claim(picker))
	require.NoError(t, aggregate.ApplyPick(picker, aggregate.Items()[0].ID(), 2))
	require.NoError(t, aggregate.ClaimForPacking(picker))
	require.NoError(t, aggregate.MarkPacked(picker))
	require.NoError(t, aggregate.Ship(picker))
	aggregate.TakeStateChanges()

	orderRepo := new(MockOrderRepository)
	uow, factory := newFulfillmentUoW(orderRepo, new(MockInventoryRepository),
		new(MockPickTaskRepository), new(MockAuditRepository))

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), picker)
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.StatusShipped, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
