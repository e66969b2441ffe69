// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition covering the repositories
// it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// PickTaskRepoFactory provides access to the pick task repository within a transaction.
	PickTaskRepoFactory interface {
		PickTaskRepository() ports.PickTaskRepository
	}

	// SKURepoFactory provides access to the SKU repository within a transaction.
	SKURepoFactory interface {
		SKURepository() ports.SKURepository
	}

	// BinLocationRepoFactory provides access to the bin location repository within a transaction.
	BinLocationRepoFactory interface {
		BinLocationRepository() ports.BinLocationRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// OrderUoW manages transactions for order creation, which reads SKU
	// reference data and writes the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		SKURepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LifecycleUoW manages transactions for order status transitions that do
	// not touch inventory: packing claims, pack confirmation, shipping.
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		AuditRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// InventoryUoW manages transactions for stock mutations that do not
	// involve an order: receipts and manual adjustments.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
		SKURepoFactory
		BinLocationRepoFactory
		AuditRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// TaskUoW manages transactions touching only pick tasks, such as a
	// picker starting a task.
	TaskUoW interface {
		TxManager
		PickTaskRepoFactory
	}

	// TaskUoWFactory creates new task unit of work instances.
	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// FulfillmentUoW manages transactions spanning orders, inventory, and
	// pick tasks: claiming, picking, skipping, cancelling, and backorder
	// release.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
		PickTaskRepoFactory
		AuditRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
