package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, skuID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), skuID, quantity)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.PriorityNormal, []*order.Item{item})
	require.NoError(t, err)
	return o
}

func newStockedUnit(t *testing.T, skuID kernel.UUID, bin string, quantity, reserved int) *inventory.Unit {
	t.Helper()
	code, err := kernel.ParseBinCode(bin)
	require.NoError(t, err)
	unit, err := inventory.RestoreUnit(kernel.NewUUID(), skuID, code, quantity, reserved)
	require.NoError(t, err)
	return unit
}

func newFulfillmentUoW(
	orderRepo *MockOrderRepository,
	invRepo *MockInventoryRepository,
	taskRepo *MockPickTaskRepository,
	auditRepo *MockAuditRepository,
) (*MockFulfillmentUoW, *MockFulfillmentUoWFactory) {
	uow := new(MockFulfillmentUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InventoryRepository").Return(invRepo)
	uow.On("PickTaskRepository").Return(taskRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	skuID := kernel.NewUUID()
	aggregate := newPendingOrder(t, skuID, 5)
	picker := kernel.NewUUID()
	unit := newStockedUnit(t, skuID, "A-01-01", 10, 0)

	orderRepo := new(MockOrderRepository)
	invRepo := new(MockInventoryRepository)
	taskRepo := new(MockPickTaskRepository)
	auditRepo := new(MockAuditRepository)
	uow, factory := newFulfillmentUoW(orderRepo, invRepo, taskRepo, auditRepo)

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("CountActiveByPicker", ctx, picker).Return(0, nil).Once()
	invRepo.On("GetBySKUForUpdate", ctx, []kernel.UUID{skuID}).
		Return([]*inventory.Unit{unit}, nil).Once()
	invRepo.On("Update", ctx, unit).Return(nil).Once()
	auditRepo.On("AppendTransaction", ctx, mock.AnythingOfType("*inventory.Transaction")).
		Return(nil).Once()
	taskRepo.On("Add", ctx, mock.AnythingOfType("*picktask.Task")).Return(nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	auditRepo.On("AppendStateChanges", ctx, mock.AnythingOfType("[]*order.StateChange")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	publisher := new(MockNotificationPublisher)
	h := commands.NewClaimOrderCommandHandler(factory, publisher, 3)
	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), picker)
	require.NoError(t, err)

	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusPicking, aggregate.Status())
	assert.Equal(t, 5, unit.Reserved())
	orderRepo.AssertExpectations(t)
	invRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	publisher.AssertNotCalled(t, "PublishOrderBackordered", mock.Anything, mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_InsufficientStockBackorders(t *testing.T) {
	ctx := t.Context()
	skuID := kernel.NewUUID()
	aggregate := newPendingOrder(t, skuID, 5)
	picker := kernel.NewUUID()
	unit := newStockedUnit(t, skuID, "A-01-01", 2, 0)

	orderRepo := new(MockOrderRepository)
	invRepo := new(MockInventoryRepository)
	taskRepo := new(MockPickTaskRepository)
	auditRepo := new(MockAuditRepository)
	uow, factory := newFulfillmentUoW(orderRepo, invRepo, taskRepo, auditRepo)

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("CountActiveByPicker", ctx, picker).Return(0, nil).Once()
	invRepo.On("GetBySKUForUpdate", ctx, []kernel.UUID{skuID}).
		Return([]*inventory.Unit{unit}, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	auditRepo.On("AppendStateChanges", ctx, mock.AnythingOfType("[]*order.StateChange")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("PublishOrderBackordered", ctx, aggregate.ID()).Return(nil).Once()

	h := commands.NewClaimOrderCommandHandler(factory, publisher, 3)
	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), picker)
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderBackordered)
	assert.Equal(t, order.StatusBackorder, aggregate.Status())
	// nothing was reserved and no tasks were created
	assert.Equal(t, 0, unit.Reserved())
	taskRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	publisher.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()
	skuID := kernel.NewUUID()
	aggregate := newPendingOrder(t, skuID, 5)
	picker := kernel.NewUUID()

	orderRepo := new(MockOrderRepository)
	invRepo := new(MockInventoryRepository)
	taskRepo := new(MockPickTaskRepository)
	auditRepo := new(MockAuditRepository)
	uow, factory := newFulfillmentUoW(orderRepo, invRepo, taskRepo, auditRepo)

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("CountActiveByPicker", ctx, picker).Return(3, nil).Once()

	h := commands.NewClaimOrderCommandHandler(factory, new(MockNotificationPublisher), 3)
	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), picker)
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	assert.Equal(t, order.StatusPending, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	skuID := kernel.NewUUID()
	aggregate := newPendingOrder(t, skuID, 5)
	require.NoError(t, aggregate.Claim(kernel.NewUUID()))
	aggregate.TakeStateChanges()

	orderRepo := new(MockOrderRepository)
	uow, factory := newFulfillmentUoW(orderRepo, new(MockInventoryRepository),
		new(MockPickTaskRepository), new(MockAuditRepository))

	uow.On("Begin", ctx).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := commands.NewClaimOrderCommandHandler(factory, new(MockNotificationPublisher), 3)
	cmd, err := commands.NewClaimOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyClaimed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewClaimOrderCommandHandler(new(MockFulfillmentUoWFactory),
		new(MockNotificationPublisher), 3)

	err := h.Handle(t.Context(), commands.ClaimOrderCommand{})

	require.Error(t, err)
}
