// Package http exposes the ordering use cases over an echo HTTP API.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	addOrderItemHandler    commands.AddOrderItemCommandHandler
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler
	confirmOrderHandler    commands.ConfirmOrderCommandHandler
	shipOrderHandler       commands.ShipOrderCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	createCustomerHandler  commands.CreateCustomerCommandHandler
	updateCustomerHandler  commands.UpdateCustomerCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getUnfinishedOrdersHandler queries.GetUnfinishedOrdersQueryHandler
	getCustomerHandler         queries.GetCustomerQueryHandler

	// Identifier minting for the create endpoints
	orderRepo    ports.OrderRepository
	customerRepo ports.CustomerRepository
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUnfinishedOrdersHandler queries.GetUnfinishedOrdersQueryHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	orderRepo ports.OrderRepository,
	customerRepo ports.CustomerRepository,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		addOrderItemHandler:        addOrderItemHandler,
		removeOrderItemHandler:     removeOrderItemHandler,
		confirmOrderHandler:        confirmOrderHandler,
		shipOrderHandler:           shipOrderHandler,
		completeOrderHandler:       completeOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		createCustomerHandler:      createCustomerHandler,
		updateCustomerHandler:      updateCustomerHandler,
		getOrderHandler:            getOrderHandler,
		getUnfinishedOrdersHandler: getUnfinishedOrdersHandler,
		getCustomerHandler:         getCustomerHandler,
		orderRepo:                  orderRepo,
		customerRepo:               customerRepo,
	}
}

// RegisterRoutes binds every endpoint under /api/v1 on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/customers", s.CreateCustomer)
	v1.PUT("/customers/:customerId", s.UpdateCustomer)
	v1.GET("/customers/:customerId", s.GetCustomer)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.POST("/orders/:orderId/items", s.AddOrderItem)
	v1.DELETE("/orders/:orderId/items/:itemId", s.RemoveOrderItem)
	v1.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	v1.POST("/orders/:orderId/ship", s.ShipOrder)
	v1.POST("/orders/:orderId/complete", s.CompleteOrder)
	v1.POST("/orders/:orderId/cancel", s.CancelOrder)
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CreateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := s.customerRepo.NextID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, request.Name, request.Email)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customerID.String()})
}

// UpdateCustomer handles PUT /api/v1/customers/:customerId - updates name and email.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	var request UpdateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, request.Name, request.Email)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if handleErr := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomer handles GET /api/v1/customers/:customerId - retrieves one customer.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	customer, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Customer{
		ID:    customer.ID.String(),
		Name:  customer.Name,
		Email: customer.Email,
	})
}

// CreateOrder handles POST /api/v1/orders - opens a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	address, err := kernel.NewAddress(request.Street, request.City)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	orderID := s.orderRepo.NextID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, address, request.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// AddOrderItem handles POST /api/v1/orders/:orderId/items - adds a product line.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request AddOrderItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewAddOrderItemCommand(
		orderID, productID, request.PriceAmount, request.PriceCurrency, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderId/items/:itemId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:orderId/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ShipOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewShipOrderCommand(orderID, request.TrackingRef)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete - marks delivery.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	items := make([]OrderItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItem{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			PriceAmount: item.PriceAmount,
			Quantity:    item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:           result.ID.String(),
		CustomerID:   result.CustomerID.String(),
		Street:       result.Street,
		City:         result.City,
		Currency:     result.Currency,
		Status:       result.Status,
		TrackingRef:  result.TrackingRef,
		CancelReason: result.CancelReason,
		TotalAmount:  result.TotalAmount,
		Items:        items,
	})
}

// GetOrders handles GET /api/v1/orders - retrieves all unfinished orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUnfinishedOrdersQuery()

	orders, err := s.getUnfinishedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, row := range orders {
		response[i] = OrderSummary{
			ID:         row.ID.String(),
			CustomerID: row.CustomerID.String(),
			Status:     row.Status,
			Currency:   row.Currency,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// handlerError maps use-case failures to HTTP statuses. Invalid state
// transitions surface as ValueIsInvalid from the status machine, so they map
// to 409 alongside optimistic-lock conflicts.
func handlerError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrencyConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, order.ErrOrderHasNoItems):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
