// Package http exposes the fulfillment use cases over a REST API built on
// Echo. It translates HTTP requests into commands and queries and maps domain
// errors to status codes.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	claimOrderHandler        commands.ClaimOrderCommandHandler
	startTaskHandler         commands.StartTaskCommandHandler
	completeTaskHandler      commands.CompleteTaskCommandHandler
	skipTaskHandler          commands.SkipTaskCommandHandler
	claimPackingHandler      commands.ClaimPackingCommandHandler
	confirmPackedHandler     commands.ConfirmPackedCommandHandler
	shipOrderHandler         commands.ShipOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	receiveStockHandler      commands.ReceiveStockCommandHandler
	adjustInventoryHandler   commands.AdjustInventoryCommandHandler
	orderStatusHandler       queries.GetOrderStatusQueryHandler
	inventoryHistoryHandler  queries.GetInventoryTransactionsQueryHandler
	backorderedOrdersHandler queries.GetBackorderedOrdersQueryHandler
	pickerTasksHandler       queries.GetPickerTasksQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	startTaskHandler commands.StartTaskCommandHandler,
	completeTaskHandler commands.CompleteTaskCommandHandler,
	skipTaskHandler commands.SkipTaskCommandHandler,
	claimPackingHandler commands.ClaimPackingCommandHandler,
	confirmPackedHandler commands.ConfirmPackedCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	receiveStockHandler commands.ReceiveStockCommandHandler,
	adjustInventoryHandler commands.AdjustInventoryCommandHandler,
	orderStatusHandler queries.GetOrderStatusQueryHandler,
	inventoryHistoryHandler queries.GetInventoryTransactionsQueryHandler,
	backorderedOrdersHandler queries.GetBackorderedOrdersQueryHandler,
	pickerTasksHandler queries.GetPickerTasksQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		claimOrderHandler:        claimOrderHandler,
		startTaskHandler:         startTaskHandler,
		completeTaskHandler:      completeTaskHandler,
		skipTaskHandler:          skipTaskHandler,
		claimPackingHandler:      claimPackingHandler,
		confirmPackedHandler:     confirmPackedHandler,
		shipOrderHandler:         shipOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		receiveStockHandler:      receiveStockHandler,
		adjustInventoryHandler:   adjustInventoryHandler,
		orderStatusHandler:       orderStatusHandler,
		inventoryHistoryHandler:  inventoryHistoryHandler,
		backorderedOrdersHandler: backorderedOrdersHandler,
		pickerTasksHandler:       pickerTasksHandler,
	}
}

// RegisterRoutes wires the API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/backordered", s.GetBackorderedOrders)
	api.GET("/orders/:orderID", s.GetOrderStatus)
	api.POST("/orders/:orderID/claim", s.ClaimOrder)
	api.POST("/orders/:orderID/packing/claim", s.ClaimPacking)
	api.POST("/orders/:orderID/packing/confirm", s.ConfirmPacked)
	api.POST("/orders/:orderID/ship", s.ShipOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.POST("/tasks/:taskID/start", s.StartTask)
	api.POST("/tasks/:taskID/complete", s.CompleteTask)
	api.POST("/tasks/:taskID/skip", s.SkipTask)
	api.GET("/pickers/:pickerID/tasks", s.GetPickerTasks)

	api.POST("/inventory/receipts", s.ReceiveStock)
	api.POST("/inventory/adjustments", s.AdjustInventory)
	api.GET("/inventory/:skuID/transactions", s.GetInventoryTransactions)
}

// Error is the JSON error envelope returned on failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	items := make([]commands.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		skuID, skuErr := kernel.UUIDFromString(item.SKUID)
		if skuErr != nil {
			return badRequest(ctx, "Invalid sku id: "+skuErr.Error())
		}
		items = append(items, commands.CreateOrderItem{
			SKUID:    skuID,
			Quantity: item.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, parsePriority(req.Priority), items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ClaimOrder handles POST /api/v1/orders/:orderID/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ActorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickerID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid picker id: "+err.Error())
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, pickerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// StartTask handles POST /api/v1/tasks/:taskID/start.
func (s *Server) StartTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskID")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req StartTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickerID, err := kernel.UUIDFromString(req.PickerID)
	if err != nil {
		return badRequest(ctx, "Invalid picker id: "+err.Error())
	}

	cmd, err := commands.NewStartTaskCommand(taskID, pickerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.startTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteTask handles POST /api/v1/tasks/:taskID/complete.
func (s *Server) CompleteTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskID")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req CompleteTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickerID, err := kernel.UUIDFromString(req.PickerID)
	if err != nil {
		return badRequest(ctx, "Invalid picker id: "+err.Error())
	}

	cmd, err := commands.NewCompleteTaskCommand(taskID, pickerID, req.PickedQuantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SkipTask handles POST /api/v1/tasks/:taskID/skip.
func (s *Server) SkipTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskID")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var req SkipTaskRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pickerID, err := kernel.UUIDFromString(req.PickerID)
	if err != nil {
		return badRequest(ctx, "Invalid picker id: "+err.Error())
	}

	cmd, err := commands.NewSkipTaskCommand(taskID, pickerID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.skipTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ClaimPacking handles POST /api/v1/orders/:orderID/packing/claim.
func (s *Server) ClaimPacking(ctx echo.Context) error {
	return s.handleLifecycle(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewClaimPackingCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.claimPackingHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmPacked handles POST /api/v1/orders/:orderID/packing/confirm.
func (s *Server) ConfirmPacked(ctx echo.Context) error {
	return s.handleLifecycle(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewConfirmPackedCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.confirmPackedHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ShipOrder handles POST /api/v1/orders/:orderID/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	return s.handleLifecycle(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewShipOrderCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.handleLifecycle(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// handleLifecycle factors the shared shape of the order lifecycle endpoints:
// an order ID in the path and an actor ID in the body.
func (s *Server) handleLifecycle(ctx echo.Context, run func(orderID, actorID kernel.UUID) error) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ActorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	if err = run(orderID, actorID); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReceiveStock handles POST /api/v1/inventory/receipts.
func (s *Server) ReceiveStock(ctx echo.Context) error {
	var req ReceiveStockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	skuID, binCode, actorID, err := parseInventoryIdentifiers(req.SKUID, req.BinCode, req.ActorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewReceiveStockCommand(skuID, binCode, req.Quantity, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.receiveStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AdjustInventory handles POST /api/v1/inventory/adjustments.
func (s *Server) AdjustInventory(ctx echo.Context) error {
	var req AdjustInventoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	skuID, binCode, actorID, err := parseInventoryIdentifiers(req.SKUID, req.BinCode, req.ActorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdjustInventoryCommand(skuID, binCode, req.Delta, req.Reason, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.adjustInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrderStatus handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	status, err := s.orderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderStatusResponse(status))
}

// GetInventoryTransactions handles GET /api/v1/inventory/:skuID/transactions.
func (s *Server) GetInventoryTransactions(ctx echo.Context) error {
	skuID, err := pathUUID(ctx, "skuID")
	if err != nil {
		return badRequest(ctx, "Invalid sku id")
	}

	query, err := queries.NewGetInventoryTransactionsQuery(skuID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	transactions, err := s.inventoryHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]InventoryTransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, toInventoryTransactionResponse(tx))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBackorderedOrders handles GET /api/v1/orders/backordered.
func (s *Server) GetBackorderedOrders(ctx echo.Context) error {
	orders, err := s.backorderedOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetBackorderedOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]BackorderedOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, BackorderedOrderResponse{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			Priority:   o.Priority.String(),
			CreatedAt:  o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPickerTasks handles GET /api/v1/pickers/:pickerID/tasks.
func (s *Server) GetPickerTasks(ctx echo.Context) error {
	pickerID, err := pathUUID(ctx, "pickerID")
	if err != nil {
		return badRequest(ctx, "Invalid picker id")
	}

	query, err := queries.NewGetPickerTasksQuery(pickerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	tasks, err := s.pickerTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PickerTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, PickerTaskResponse{
			ID:       task.ID.String(),
			OrderID:  task.OrderID.String(),
			SKUCode:  task.SKUCode,
			BinCode:  task.BinCode,
			Quantity: task.Quantity,
			Status:   task.Status.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func parseInventoryIdentifiers(skuID, binCode, actorID string) (kernel.UUID, kernel.BinCode, kernel.UUID, error) {
	sku, err := kernel.UUIDFromString(skuID)
	if err != nil {
		return kernel.UUID{}, kernel.BinCode{}, kernel.UUID{}, errors.New("invalid sku id: " + err.Error())
	}
	code, err := kernel.ParseBinCode(binCode)
	if err != nil {
		return kernel.UUID{}, kernel.BinCode{}, kernel.UUID{}, errors.New("invalid bin code: " + err.Error())
	}
	actor, err := kernel.UUIDFromString(actorID)
	if err != nil {
		return kernel.UUID{}, kernel.BinCode{}, kernel.UUID{}, errors.New("invalid actor id: " + err.Error())
	}
	return sku, code, actor, nil
}

func parsePriority(s string) order.Priority {
	switch s {
	case "low":
		return order.PriorityLow
	case "", "normal":
		return order.PriorityNormal
	case "high":
		return order.PriorityHigh
	case "urgent":
		return order.PriorityUrgent
	default:
		return order.PriorityUnknown
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain errors to HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyClaimed),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrInsufficientAvailability),
		errors.Is(err, commands.ErrOrderBackordered),
		errors.Is(err, commands.ErrSKUIsNotSellable):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrTaskNotAssignedToPicker):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrOverPick),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
