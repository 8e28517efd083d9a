// Package http exposes the order lifecycle over an echo HTTP server.
//
// The adapter resolves the acting identity once per request from headers and
// passes the closed actor variant into every command, so use cases never
// inspect transport details.
package http

import (
	"context"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/rating"
	"foodorder/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Use case surfaces consumed by the server. Declared here so handler tests
// can substitute stubs without a database.
type (
	createOrderUseCase interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	updateOrderStatusUseCase interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}

	reorderUseCase interface {
		Handle(ctx context.Context, cmd commands.ReorderCommand) (commands.ReorderResult, error)
	}

	rateOrderUseCase interface {
		Handle(ctx context.Context, cmd commands.RateOrderCommand) (*rating.Rating, error)
	}

	customerOrdersUseCase interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.OrderSummaryResponse, error)
	}

	restaurantOrdersUseCase interface {
		Handle(ctx context.Context, query queries.GetRestaurantOrdersQuery) ([]queries.OrderSummaryResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       createOrderUseCase
	updateOrderStatusHandler updateOrderStatusUseCase
	reorderHandler           reorderUseCase
	rateOrderHandler         rateOrderUseCase

	getCustomerOrdersHandler   customerOrdersUseCase
	getRestaurantOrdersHandler restaurantOrdersUseCase
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler createOrderUseCase,
	updateOrderStatusHandler updateOrderStatusUseCase,
	reorderHandler reorderUseCase,
	rateOrderHandler rateOrderUseCase,
	getCustomerOrdersHandler customerOrdersUseCase,
	getRestaurantOrdersHandler restaurantOrdersUseCase,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		reorderHandler:             reorderHandler,
		rateOrderHandler:           rateOrderHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/reorder", s.Reorder)
	api.POST("/orders/:id/rating", s.RateOrder)
	api.GET("/me/orders", s.GetMyOrders)
	api.GET("/restaurant/orders", s.GetRestaurantOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]services.LineRequest, 0, len(body.Items))
	for _, item := range body.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		lines = append(lines, services.LineRequest{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			Note:       item.Note,
		})
	}

	location, err := resolveLocation(body.Location)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(resolveActor(ctx), restaurantID, lines, location)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body UpdateStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	requested, err := order.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(resolveActor(ctx), orderID, requested)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// Reorder handles POST /api/v1/orders/:id/reorder.
func (s *Server) Reorder(ctx echo.Context) error {
	sourceOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body ReorderRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	location, err := resolveLocation(body.Location)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReorderCommand(resolveActor(ctx), sourceOrderID, location, body.AllowPartial)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.reorderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, reorderToResponse(result))
}

// RateOrder handles POST /api/v1/orders/:id/rating.
func (s *Server) RateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body RateOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewRateOrderCommand(resolveActor(ctx), orderID, body.Score)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ratingToResponse(record))
}

// GetMyOrders handles GET /api/v1/me/orders. Supports optional status,
// limit and offset query parameters.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor := resolveActor(ctx)
	if !actor.IsCustomer() {
		return writeError(ctx, commands.ErrCustomerRoleRequired)
	}

	statusFilter := order.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = parsed
	}

	limit, offset, err := parsePage(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID(), statusFilter, limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

// GetRestaurantOrders handles GET /api/v1/restaurant/orders. The scope
// query parameter selects pending, active, or all orders.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	actor := resolveActor(ctx)
	if !actor.IsRestaurant() {
		return simpleError(ctx, http.StatusForbidden, order.ErrActorHasNoRole)
	}

	scope := queries.ScopePending
	if raw := ctx.QueryParam("scope"); raw != "" {
		parsed, err := queries.ScopeFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		scope = parsed
	}

	limit, offset, err := parsePage(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(actor.ID(), scope, limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesToResponse(summaries))
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}
