// Package http exposes the order lifecycle over a REST API plus a WebSocket
// endpoint for live updates. Handlers translate between the wire format and
// the application's commands and queries; no business rules live here.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/adapters/out/ws"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	markReadHandler          commands.MarkNotificationReadCommandHandler
	markAllReadHandler       commands.MarkAllNotificationsReadCommandHandler

	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
	getDashboardHandler     queries.GetDashboardStatsQueryHandler
	exportAuditLogsHandler  queries.ExportAuditLogsQueryHandler

	hub       *ws.Hub
	logger    *slog.Logger
	startedAt time.Time
}

// NewServer creates an HTTP server with the required command and query
// handlers and the WebSocket hub for live update subscriptions.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	markReadHandler commands.MarkNotificationReadCommandHandler,
	markAllReadHandler commands.MarkAllNotificationsReadCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderTimelineHandler queries.GetOrderTimelineQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getDashboardHandler queries.GetDashboardStatsQueryHandler,
	exportAuditLogsHandler queries.ExportAuditLogsQueryHandler,
	hub *ws.Hub,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		markReadHandler:          markReadHandler,
		markAllReadHandler:       markAllReadHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderTimelineHandler:  getOrderTimelineHandler,
		getNotificationsHandler:  getNotificationsHandler,
		getDashboardHandler:      getDashboardHandler,
		exportAuditLogsHandler:   exportAuditLogsHandler,
		hub:                      hub,
		logger:                   logger.With("component", "http"),
		startedAt:                time.Now(),
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/orders/:id/timeline", s.GetOrderTimeline)

	api.GET("/notifications", s.GetNotifications)
	api.PATCH("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)

	api.GET("/analytics/dashboard", s.GetDashboardStats)
	api.GET("/audit-logs/export", s.ExportAuditLogs)

	api.GET("/health", s.Health)

	e.GET("/ws", s.ServeWS)
}

// HealthResponse reports service liveness plus basic runtime figures.
type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Observers     int    `json:"observers"`
}

// Health handles GET /api/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		Observers:     s.hub.ObserverCount(),
	})
}

// ErrorResponse is the JSON body returned on failures. AllowedTransitions is
// set only for rejected status transitions, so clients can present the valid
// next steps.
type ErrorResponse struct {
	Code               int      `json:"code"`
	Message            string   `json:"message"`
	AllowedTransitions []string `json:"allowedTransitions,omitempty"`
}

// respondError maps application errors onto HTTP status codes: missing
// objects to 404, validation failures to 400, rejected transitions and lost
// update races to 409, everything else to 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var transitionErr *errs.TransitionNotAllowedError
	if errors.As(err, &transitionErr) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:               http.StatusConflict,
			Message:            transitionErr.Error(),
			AllowedTransitions: transitionErr.Allowed,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConcurrentUpdate):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

// respondBadRequest returns a 400 with the given error's message. Used for
// malformed input caught before a command or query is constructed.
func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
