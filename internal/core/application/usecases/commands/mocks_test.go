package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picktask"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountActiveByPicker(ctx context.Context, pickerID kernel.UUID) (int, error) {
	args := m.Called(ctx, pickerID)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) CountActiveByPacker(ctx context.Context, packerID kernel.UUID) (int, error) {
	args := m.Called(ctx, packerID)
	return args.Int(0), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, unit *inventory.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, unit *inventory.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, skuID kernel.UUID, binCode kernel.BinCode) (*inventory.Unit, error) {
	args := m.Called(ctx, skuID, binCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Unit), args.Error(1)
}

func (m *MockInventoryRepository) GetForUpdate(ctx context.Context, skuID kernel.UUID, binCode kernel.BinCode) (*inventory.Unit, error) {
	args := m.Called(ctx, skuID, binCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Unit), args.Error(1)
}

func (m *MockInventoryRepository) GetBySKU(ctx context.Context, skuIDs []kernel.UUID) ([]*inventory.Unit, error) {
	args := m.Called(ctx, skuIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Unit), args.Error(1)
}

func (m *MockInventoryRepository) GetBySKUForUpdate(ctx context.Context, skuIDs []kernel.UUID) ([]*inventory.Unit, error) {
	args := m.Called(ctx, skuIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Unit), args.Error(1)
}

type MockPickTaskRepository struct{ mock.Mock }

func (m *MockPickTaskRepository) Add(ctx context.Context, task *picktask.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockPickTaskRepository) Update(ctx context.Context, task *picktask.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockPickTaskRepository) Get(ctx context.Context, id kernel.UUID) (*picktask.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*picktask.Task), args.Error(1)
}

func (m *MockPickTaskRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*picktask.Task, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*picktask.Task), args.Error(1)
}

type MockSKURepository struct{ mock.Mock }

func (m *MockSKURepository) Add(ctx context.Context, sku *catalog.SKU) error {
	args := m.Called(ctx, sku)
	return args.Error(0)
}

func (m *MockSKURepository) Update(ctx context.Context, sku *catalog.SKU) error {
	args := m.Called(ctx, sku)
	return args.Error(0)
}

func (m *MockSKURepository) Get(ctx context.Context, id kernel.UUID) (*catalog.SKU, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SKU), args.Error(1)
}

func (m *MockSKURepository) GetByCode(ctx context.Context, code string) (*catalog.SKU, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SKU), args.Error(1)
}

type MockBinLocationRepository struct{ mock.Mock }

func (m *MockBinLocationRepository) Add(ctx context.Context, location *catalog.BinLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockBinLocationRepository) Get(ctx context.Context, code kernel.BinCode) (*catalog.BinLocation, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.BinLocation), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) AppendTransaction(ctx context.Context, transaction *inventory.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockAuditRepository) AppendStateChanges(ctx context.Context, changes []*order.StateChange) error {
	args := m.Called(ctx, changes)
	return args.Error(0)
}

func (m *MockAuditRepository) GetTransactions(ctx context.Context, skuID kernel.UUID) ([]*inventory.Transaction, error) {
	args := m.Called(ctx, skuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Transaction), args.Error(1)
}

func (m *MockAuditRepository) GetStateChanges(ctx context.Context, orderID kernel.UUID) ([]*order.StateChange, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.StateChange), args.Error(1)
}

// mockTx embeds transaction lifecycle expectations shared by every UoW mock.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockTaskUoW struct{ mockTx }

func (m *MockTaskUoW) PickTaskRepository() ports.PickTaskRepository {
	return m.Called().Get(0).(ports.PickTaskRepository)
}

type MockTaskUoWFactory struct{ mock.Mock }

func (m *MockTaskUoWFactory) Create() commands.TaskUoW {
	return m.Called().Get(0).(commands.TaskUoW)
}

type MockFulfillmentUoW struct{ mockTx }

func (m *MockFulfillmentUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockFulfillmentUoW) InventoryRepository() ports.InventoryRepository {
	return m.Called().Get(0).(ports.InventoryRepository)
}

func (m *MockFulfillmentUoW) PickTaskRepository() ports.PickTaskRepository {
	return m.Called().Get(0).(ports.PickTaskRepository)
}

func (m *MockFulfillmentUoW) AuditRepository() ports.AuditRepository {
	return m.Called().Get(0).(ports.AuditRepository)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return m.Called().Get(0).(commands.FulfillmentUoW)
}

type MockLifecycleUoW struct{ mockTx }

func (m *MockLifecycleUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockLifecycleUoW) AuditRepository() ports.AuditRepository {
	return m.Called().Get(0).(ports.AuditRepository)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return m.Called().Get(0).(commands.LifecycleUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) SKURepository() ports.SKURepository {
	return m.Called().Get(0).(ports.SKURepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockInventoryUoW struct{ mockTx }

func (m *MockInventoryUoW) InventoryRepository() ports.InventoryRepository {
	return m.Called().Get(0).(ports.InventoryRepository)
}

func (m *MockInventoryUoW) SKURepository() ports.SKURepository {
	return m.Called().Get(0).(ports.SKURepository)
}

func (m *MockInventoryUoW) BinLocationRepository() ports.BinLocationRepository {
	return m.Called().Get(0).(ports.BinLocationRepository)
}

func (m *MockInventoryUoW) AuditRepository() ports.AuditRepository {
	return m.Called().Get(0).(ports.AuditRepository)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	return m.Called().Get(0).(commands.InventoryUoW)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) PublishOrderShipped(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockNotificationPublisher) PublishOrderBackordered(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockAccountingRecorder struct{ mock.Mock }

func (m *MockAccountingRecorder) RecordDeduction(ctx context.Context, orderID, skuID kernel.UUID, quantity int) error {
	args := m.Called(ctx, orderID, skuID, quantity)
	return args.Error(0)
}
