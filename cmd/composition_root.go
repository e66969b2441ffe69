package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/accounting"
	"fulfillment/internal/adapters/out/notify"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.NotificationPublisher
	accounting ports.AccountingRecorder
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  notify.NewSlogPublisher(logger),
		accounting: accounting.NewSlogRecorder(logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(
		c.fulfillmentUoWFactory(), c.publisher, c.config.MaxOrdersPerPicker)
}

func (c *CompositionRoot) CreateCompleteTaskCommandHandler() commands.CompleteTaskCommandHandler {
	return commands.NewCompleteTaskCommandHandler(c.fulfillmentUoWFactory(), c.accounting)
}

func (c *CompositionRoot) CreateStartTaskCommandHandler() commands.StartTaskCommandHandler {
	return commands.NewStartTaskCommandHandler(c.taskUoWFactory())
}

func (c *CompositionRoot) CreateSkipTaskCommandHandler() commands.SkipTaskCommandHandler {
	return commands.NewSkipTaskCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateClaimPackingCommandHandler() commands.ClaimPackingCommandHandler {
	return commands.NewClaimPackingCommandHandler(
		c.lifecycleUoWFactory(), c.config.MaxOrdersPerPacker)
}

func (c *CompositionRoot) CreateConfirmPackedCommandHandler() commands.ConfirmPackedCommandHandler {
	return commands.NewConfirmPackedCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.lifecycleUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateReceiveStockCommandHandler() commands.ReceiveStockCommandHandler {
	return commands.NewReceiveStockCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateAdjustInventoryCommandHandler() commands.AdjustInventoryCommandHandler {
	return commands.NewAdjustInventoryCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateReleaseBackordersCommandHandler() commands.ReleaseBackordersCommandHandler {
	return commands.NewReleaseBackordersCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryTransactionsQueryHandler() queries.GetInventoryTransactionsQueryHandler {
	return queries.NewGetInventoryTransactionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBackorderedOrdersQueryHandler() queries.GetBackorderedOrdersQueryHandler {
	return queries.NewGetBackorderedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickerTasksQueryHandler() queries.GetPickerTasksQueryHandler {
	return queries.NewGetPickerTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) taskUoWFactory() commands.TaskUoWFactory {
	return FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
