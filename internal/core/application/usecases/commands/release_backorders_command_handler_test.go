package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBackorderedOrder(t *testing.T, skuID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	o := newPendingOrder(t, skuID, quantity)
	require.NoError(t, o.MarkBackordered(kernel.NewUUID()))
	o.TakeStateChanges()
	return o
}

// Two backordered orders: stock arrived for the first, not for the second.
// The sweep releases only the first.
func TestReleaseBackordersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	skuA := kernel.NewUUID()
	skuB := kernel.NewUUID()
	coverable := newBackorderedOrder(t, skuA, 5)
	starved := newBackorderedOrder(t, skuB, 5)

	orderRepo := new(MockOrderRepository)
	invRepo := new(MockInventoryRepository)
	auditRepo := new(MockAuditRepository)
	uow, factory := newFulfillmentUoW(orderRepo, invRepo, new(MockPickTaskRepository), auditRepo)

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("GetAllInStatus", ctx, order.StatusBackorder).
		Return([]*order.Order{coverable, starved}, nil).Once()
	orderRepo.On("GetForUpdate", ctx, coverable.ID()).Return(coverable, nil).Once()
	orderRepo.On("GetForUpdate", ctx, starved.ID()).Return(starved, nil).Once()
	invRepo.On("GetBySKU", ctx, []kernel.UUID{skuA}).
		Return([]*inventory.Unit{newStockedUnit(t, skuA, "A-01-01", 8, 0)}, nil).Once()
	invRepo.On("GetBySKU", ctx, []kernel.UUID{skuB}).
		Return([]*inventory.Unit{newStockedUnit(t, skuB, "B-01-01", 2, 0)}, nil).Once()
	orderRepo.On("Update", ctx, coverable).Return(nil).Once()
	auditRepo.On("AppendStateChanges", ctx, mock.AnythingOfType("[]*order.StateChange")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewReleaseBackordersCommandHandler(factory)
	cmd, err := commands.NewReleaseBackordersCommand(kernel.NewUUID())
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusPending, coverable.Status())
	assert.Equal(t, order.StatusBackorder, starved.Status())
	orderRepo.AssertExpectations(t)
	invRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

// A cancel can commit between the sweep's snapshot read and its row lock.
// The locked re-read sees the terminal status and the sweep must leave the
// order alone instead of writing Pending over Cancelled.
func TestReleaseBackordersCommandHandler_Handle_SkipsOrderCancelledSinceSnapshot(t *testing.T) {
	ctx := t.Context()
	skuID := kernel.NewUUID()
	stale := newBackorderedOrder(t, skuID, 5)

	item, err := order.NewItem(kernel.NewUUID(), skuID, 5)
	require.NoError(t, err)
	cancelled, err := order.NewOrder(stale.ID(), stale.CustomerID(), order.PriorityNormal, []*order.Item{item})
	require.NoError(t, err)
	require.NoError(t, cancelled.MarkBackordered(kernel.NewUUID()))
	require.NoError(t, cancelled.Cancel(kernel.NewUUID()))
	cancelled.TakeStateChanges()

	orderRepo := new(MockOrderRepository)
	invRepo := new(MockInventoryRepository)
	uow, factory := newFulfillmentUoW(orderRepo, invRepo,
		new(MockPickTaskRepository), new(MockAuditRepository))

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("GetAllInStatus", ctx, order.StatusBackorder).
		Return([]*order.Order{stale}, nil).Once()
	orderRepo.On("GetForUpdate", ctx, stale.ID()).Return(cancelled, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewReleaseBackordersCommandHandler(factory)
	cmd, err := commands.NewReleaseBackordersCommand(kernel.NewUUID())
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusCancelled, cancelled.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	invRepo.AssertNotCalled(t, "GetBySKU", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
}

func TestReleaseBackordersCommandHandler_Handle_NothingToRelease(t *testing.T) {
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	uow, factory := newFulfillmentUoW(orderRepo, new(MockInventoryRepository),
		new(MockPickTaskRepository), new(MockAuditRepository))

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("GetAllInStatus", ctx, order.StatusBackorder).
		Return([]*order.Order{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewReleaseBackordersCommandHandler(factory)
	cmd, err := commands.NewReleaseBackordersCommand(kernel.NewUUID())
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
}
