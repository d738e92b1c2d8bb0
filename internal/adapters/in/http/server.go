// Package http provides the Echo-based HTTP adapter. Handlers translate JSON
// requests into commands and queries and map application errors onto status
// codes.
package http

import (
	"fmt"
	"net/http"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/cart"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the command side of the application layer.
type CommandHandlers struct {
	AddItemToCart      commands.AddItemToCartCommandHandler
	RemoveItemFromCart commands.RemoveItemFromCartCommandHandler
	UpdateItemQuantity commands.UpdateItemQuantityCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	Checkout           commands.CheckoutCommandHandler

	ConfirmOrder         commands.ConfirmOrderCommandHandler
	StartOrderProcessing commands.StartOrderProcessingCommandHandler
	ShipOrder            commands.ShipOrderCommandHandler
	DeliverOrder         commands.DeliverOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	RefundOrder          commands.RefundOrderCommandHandler

	ConfirmServiceOrder  commands.ConfirmServiceOrderCommandHandler
	ScheduleServiceOrder commands.ScheduleServiceOrderCommandHandler
	StartServiceWork     commands.StartServiceWorkCommandHandler
	HoldServiceWork      commands.HoldServiceWorkCommandHandler
	ResumeServiceWork    commands.ResumeServiceWorkCommandHandler
	CompleteServiceOrder commands.CompleteServiceOrderCommandHandler
	InvoiceServiceOrder  commands.InvoiceServiceOrderCommandHandler
	CancelServiceOrder   commands.CancelServiceOrderCommandHandler
	AddExpense           commands.AddExpenseCommandHandler
	DecideExpense        commands.DecideExpenseCommandHandler
}

// QueryHandlers groups the query side of the application layer.
type QueryHandlers struct {
	GetCart                   queries.GetCartQueryHandler
	GetOpenOrders             queries.GetOpenOrdersQueryHandler
	GetUninvoicedServiceOrder queries.GetUninvoicedServiceOrdersQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands      CommandHandlers
	queries       QueryHandlers
	shippingRates ports.ShippingRateProvider
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	shippingRates ports.ShippingRateProvider,
) *Server {
	return &Server{
		commands:      commandHandlers,
		queries:       queryHandlers,
		shippingRates: shippingRates,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/carts/:cartId", s.GetCart)
	api.POST("/carts/:cartId/items", s.AddCartItem)
	api.PUT("/carts/:cartId/items/:itemId", s.UpdateCartItem)
	api.DELETE("/carts/:cartId/items/:itemId", s.RemoveCartItem)
	api.DELETE("/carts/:cartId", s.ClearCart)
	api.POST("/carts/:cartId/checkout", s.Checkout)

	api.GET("/shipping-rates", s.GetShippingRates)

	api.GET("/orders/open", s.GetOpenOrders)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/process", s.StartOrderProcessing)
	api.POST("/orders/:orderId/ship", s.ShipOrder)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/refund", s.RefundOrder)

	api.GET("/service-orders/uninvoiced", s.GetUninvoicedServiceOrders)
	api.POST("/service-orders/:serviceOrderId/confirm", s.ConfirmServiceOrder)
	api.POST("/service-orders/:serviceOrderId/schedule", s.ScheduleServiceOrder)
	api.POST("/service-orders/:serviceOrderId/start", s.StartServiceWork)
	api.POST("/service-orders/:serviceOrderId/hold", s.HoldServiceWork)
	api.POST("/service-orders/:serviceOrderId/resume", s.ResumeServiceWork)
	api.POST("/service-orders/:serviceOrderId/complete", s.CompleteServiceOrder)
	api.POST("/service-orders/:serviceOrderId/invoice", s.InvoiceServiceOrder)
	api.POST("/service-orders/:serviceOrderId/cancel", s.CancelServiceOrder)
	api.POST("/service-orders/:serviceOrderId/expenses", s.AddExpense)
	api.POST("/service-orders/:serviceOrderId/expenses/:expenseId/decision", s.DecideExpense)
}

// GetCart handles GET /api/v1/carts/:cartId.
func (s *Server) GetCart(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart ID")
	}

	query, err := queries.NewGetCartQuery(cartID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]CartItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = CartItemResponse{
			CatalogItemID: item.CatalogItemID.String(),
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice.MinorUnits(),
			LineTotal:     item.LineTotal.MinorUnits(),
		}
	}

	return ctx.JSON(http.StatusOK, CartResponse{
		ID:       result.ID.String(),
		OwnerID:  result.OwnerID.String(),
		Kind:     result.Kind,
		Items:    items,
		Subtotal: result.Subtotal.MinorUnits(),
	})
}

// AddCartItem handles POST /api/v1/carts/:cartId/items. The cart is created
// on the first add.
func (s *Server) AddCartItem(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart ID")
	}

	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner ID")
	}

	catalogItemID, err := kernel.UUIDFromString(req.CatalogItemID)
	if err != nil {
		return badRequest(ctx, "Invalid catalog item ID")
	}

	kind, err := cartKindFromString(req.Kind)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	unitPrice, err := kernel.NewMoneyFromMinorUnits(req.UnitPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddItemToCartCommand(cartID, ownerID, kind,
		catalogItemID, req.Quantity, unitPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.AddItemToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartItem handles PUT /api/v1/carts/:cartId/items/:itemId. A zero
// quantity removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart ID")
	}

	catalogItemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid catalog item ID")
	}

	var req UpdateCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemQuantityCommand(cartID, catalogItemID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.UpdateItemQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/carts/:cartId/items/:itemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart ID")
	}

	catalogItemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid catalog item ID")
	}

	cmd, err := commands.NewRemoveItemFromCartCommand(cartID, catalogItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.RemoveItemFromCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/carts/:cartId.
func (s *Server) ClearCart(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart ID")
	}

	cmd, err := commands.NewClearCartCommand(cartID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/carts/:cartId/checkout. A named shipping
// code selects one of the active rates; otherwise the default rate applies.
func (s *Server) Checkout(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart ID")
	}

	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var shippingAmount *kernel.Money
	if req.ShippingCode != "" {
		rate, err := s.resolveShippingRate(ctx, req.ShippingCode)
		if err != nil {
			return respondError(ctx, err)
		}
		if rate == nil {
			return badRequest(ctx, "Unknown shipping code: "+req.ShippingCode)
		}
		shippingAmount = &rate.Amount
	}

	cmd, err := commands.NewCheckoutCommand(cartID, req.StateCode, shippingAmount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.Checkout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetShippingRates handles GET /api/v1/shipping-rates.
func (s *Server) GetShippingRates(ctx echo.Context) error {
	rates, err := s.shippingRates.ListActiveRates(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ShippingRateResponse, len(rates))
	for i, rate := range rates {
		response[i] = ShippingRateResponse{
			Code:   rate.Code,
			Name:   rate.Name,
			Amount: rate.Amount.MinorUnits(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOpenOrders handles GET /api/v1/orders/open.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.queries.GetOpenOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OpenOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OpenOrderResponse{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			CustomerID:  o.CustomerID.String(),
			Status:      o.Status,
			Total:       o.Total.MinorUnits(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req ConfirmOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, req.PaymentIntentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartOrderProcessing handles POST /api/v1/orders/:orderId/process.
func (s *Server) StartOrderProcessing(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewStartOrderProcessingCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.StartOrderProcessing.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:orderId/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req ShipOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewShipOrderCommand(orderID, req.TrackingNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ShipOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.DeliverOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req CancelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundOrder handles POST /api/v1/orders/:orderId/refund.
func (s *Server) RefundOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewRefundOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.RefundOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUninvoicedServiceOrders handles GET /api/v1/service-orders/uninvoiced.
func (s *Server) GetUninvoicedServiceOrders(ctx echo.Context) error {
	query := queries.NewGetUninvoicedServiceOrdersQuery()

	serviceOrders, err := s.queries.GetUninvoicedServiceOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]UninvoicedServiceOrderResponse, len(serviceOrders))
	for i, so := range serviceOrders {
		response[i] = UninvoicedServiceOrderResponse{
			ID:              so.ID.String(),
			OrderNumber:     so.OrderNumber,
			CustomerID:      so.CustomerID.String(),
			Total:           so.Total.MinorUnits(),
			PendingExpenses: so.PendingExpenses,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmServiceOrder handles POST /api/v1/service-orders/:serviceOrderId/confirm.
func (s *Server) ConfirmServiceOrder(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	cmd, err := commands.NewConfirmServiceOrderCommand(serviceOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ConfirmServiceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ScheduleServiceOrder handles POST /api/v1/service-orders/:serviceOrderId/schedule.
func (s *Server) ScheduleServiceOrder(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	var req ScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewScheduleServiceOrderCommand(serviceOrderID, req.StartDate, req.EndDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ScheduleServiceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartServiceWork handles POST /api/v1/service-orders/:serviceOrderId/start.
func (s *Server) StartServiceWork(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	cmd, err := commands.NewStartServiceWorkCommand(serviceOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.StartServiceWork.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HoldServiceWork handles POST /api/v1/service-orders/:serviceOrderId/hold.
func (s *Server) HoldServiceWork(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	cmd, err := commands.NewHoldServiceWorkCommand(serviceOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.HoldServiceWork.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResumeServiceWork handles POST /api/v1/service-orders/:serviceOrderId/resume.
func (s *Server) ResumeServiceWork(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	cmd, err := commands.NewResumeServiceWorkCommand(serviceOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.ResumeServiceWork.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteServiceOrder handles POST /api/v1/service-orders/:serviceOrderId/complete.
func (s *Server) CompleteServiceOrder(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	var req CompleteServiceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteServiceOrderCommand(serviceOrderID,
		req.CompletionNotes, req.Signature)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CompleteServiceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InvoiceServiceOrder handles POST /api/v1/service-orders/:serviceOrderId/invoice.
func (s *Server) InvoiceServiceOrder(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	cmd, err := commands.NewInvoiceServiceOrderCommand(serviceOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.InvoiceServiceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelServiceOrder handles POST /api/v1/service-orders/:serviceOrderId/cancel.
func (s *Server) CancelServiceOrder(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	var req CancelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelServiceOrderCommand(serviceOrderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CancelServiceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddExpense handles POST /api/v1/service-orders/:serviceOrderId/expenses.
// The expense identifier is assigned here and returned to the caller.
func (s *Server) AddExpense(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	var req AddExpenseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoneyFromMinorUnits(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	expenseID := kernel.NewUUID()
	cmd, err := commands.NewAddExpenseCommand(serviceOrderID, expenseID,
		req.Description, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.AddExpense.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddExpenseResponse{
		ExpenseID: expenseID.String(),
	})
}

// DecideExpense handles POST /api/v1/service-orders/:serviceOrderId/expenses/:expenseId/decision.
func (s *Server) DecideExpense(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order ID")
	}

	expenseID, err := kernel.UUIDFromString(ctx.Param("expenseId"))
	if err != nil {
		return badRequest(ctx, "Invalid expense ID")
	}

	var req DecideExpenseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDecideExpenseCommand(serviceOrderID, expenseID,
		req.Approve, req.ApprovedBy, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.DecideExpense.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) resolveShippingRate(ctx echo.Context, code string) (*ports.ShippingRate, error) {
	rates, err := s.shippingRates.ListActiveRates(ctx.Request().Context())
	if err != nil {
		return nil, err
	}

	for i := range rates {
		if rates[i].Code == code {
			return &rates[i], nil
		}
	}
	return nil, nil
}

func cartKindFromString(value string) (cart.Kind, error) {
	switch value {
	case "Product":
		return cart.KindProduct, nil
	case "Service":
		return cart.KindService, nil
	default:
		return cart.KindUnknown, fmt.Errorf("unknown cart kind: %q", value)
	}
}
