// Package http exposes the order lifecycle and the notification feed
// over a JSON API built on echo.
package http

import (
	"net/http"
	"strconv"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/notifications"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getRecentOrdersHandler queries.GetRecentOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
	getOrderStatsHandler   queries.GetOrderStatsQueryHandler

	dispatcher *notifications.Dispatcher
	feedLimit  int
}

// NewServer creates a new HTTP server with the required command and query
// handlers. feedLimit caps the order listing when the client does not ask
// for a specific limit.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getRecentOrdersHandler queries.GetRecentOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	dispatcher *notifications.Dispatcher,
	feedLimit int,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getRecentOrdersHandler:   getRecentOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getOrderStatsHandler:     getOrderStatsHandler,
		dispatcher:               dispatcher,
		feedLimit:                feedLimit,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/stats", s.GetOrderStats)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/:id/read", s.ReadNotification)
	api.POST("/notifications/read-all", s.ReadAllNotifications)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order id: " + err.Error(),
			})
		}
		orderID = parsed
	}

	lines := make([]order.Line, 0, len(req.Lines))
	for _, l := range req.Lines {
		menuItemID, err := kernel.UUIDFromString(l.MenuItemID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid menu item id: " + err.Error(),
			})
		}

		line, err := order.NewLine(menuItemID, l.Name, l.UnitPrice, l.Quantity)
		if err != nil {
			return ctx.JSON(errorPayload(err))
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		req.CustomerName,
		req.CustomerPhone,
		req.CustomerEmail,
		req.DeliveryAddress,
		lines,
		req.TotalAmount,
	)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(errorPayload(err))
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists recent orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	limit := s.feedLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit parameter",
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetRecentOrdersQuery(limit)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	orders, err := s.getRecentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderPayload(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	result, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	return ctx.JSON(http.StatusOK, toOrderPayload(result))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - advances an
// order through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	s.dispatcher.PublishStatusChange(updated.ID(), updated.CustomerName(), updated.Status().String())

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderStats handles GET /api/v1/orders/stats - dashboard statistics.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	query := queries.NewGetOrderStatsQuery()

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	return ctx.JSON(http.StatusOK, OrderStats{
		TotalOrders: stats.TotalOrders,
		Pending:     stats.Pending,
		Processing:  stats.Processing,
		Completed:   stats.Completed,
		Cancelled:   stats.Cancelled,
		Revenue:     stats.Revenue,
	})
}

// GetNotifications handles GET /api/v1/notifications - the feed window.
func (s *Server) GetNotifications(ctx echo.Context) error {
	records := s.dispatcher.Records()

	feed := NotificationFeed{
		Notifications: make([]Notification, len(records)),
		UnreadCount:   s.dispatcher.UnreadCount(),
	}
	for i, r := range records {
		feed.Notifications[i] = Notification{
			ID:        r.ID().String(),
			Kind:      string(r.Kind()),
			Title:     r.Title(),
			Message:   r.Message(),
			OrderID:   r.OrderID().String(),
			CreatedAt: r.CreatedAt(),
			Read:      r.IsRead(),
		}
	}

	return ctx.JSON(http.StatusOK, feed)
}

// ReadNotification handles POST /api/v1/notifications/:id/read - marks a
// single notification read and returns the order it refers to.
func (s *Server) ReadNotification(ctx echo.Context) error {
	recordID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid notification id: " + err.Error(),
		})
	}

	orderID, err := s.dispatcher.Acknowledge(recordID)
	if err != nil {
		return ctx.JSON(errorPayload(err))
	}

	return ctx.JSON(http.StatusOK, ReadNotificationResponse{OrderID: orderID.String()})
}

// ReadAllNotifications handles POST /api/v1/notifications/read-all.
func (s *Server) ReadAllNotifications(ctx echo.Context) error {
	s.dispatcher.AcknowledgeAll()
	return ctx.NoContent(http.StatusNoContent)
}

func toOrderPayload(o queries.OrderResponse) Order {
	lines := make([]OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLine{
			MenuItemID: l.MenuItemID.String(),
			Name:       l.Name,
			UnitPrice:  l.UnitPrice,
			Quantity:   l.Quantity,
		}
	}

	return Order{
		ID:              o.ID.String(),
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		DeliveryAddress: o.DeliveryAddress,
		Lines:           lines,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		PlacedAt:        o.PlacedAt,
	}
}
