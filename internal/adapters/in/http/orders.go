package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	TotalAmount   float64 `json:"totalAmount"`
}

// ChangeOrderStatusRequest is the body of PATCH /api/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status    string `json:"status"`
	ChangedBy string `json:"changedBy"`
	Reason    string `json:"reason"`
}

// OrderResponse is the wire representation of one order.
type OrderResponse struct {
	ID                 string    `json:"id"`
	OrderNumber        string    `json:"orderNumber"`
	CustomerName       string    `json:"customerName"`
	CustomerEmail      string    `json:"customerEmail"`
	TotalAmount        float64   `json:"totalAmount"`
	Status             string    `json:"status"`
	StatusLabel        string    `json:"statusLabel"`
	AllowedTransitions []string  `json:"allowedTransitions"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// TimelineEntryResponse is one step of an order's transition history.
type TimelineEntryResponse struct {
	ID        string    `json:"id"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	ChangedBy string    `json:"changedBy"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	allowed := make([]string, 0)
	for _, status := range o.Status().AllowedTransitions() {
		allowed = append(allowed, status.String())
	}

	return OrderResponse{
		ID:                 o.ID().String(),
		OrderNumber:        o.OrderNumber(),
		CustomerName:       o.CustomerName(),
		CustomerEmail:      o.CustomerEmail(),
		TotalAmount:        o.TotalAmount(),
		Status:             o.Status().String(),
		StatusLabel:        o.Status().Label(),
		AllowedTransitions: allowed,
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.CustomerName, req.CustomerEmail, req.TotalAmount,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// GetOrders handles GET /api/orders with an optional ?status= filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, row := range orders {
		response[i] = OrderResponse{
			ID:                 row.ID.String(),
			OrderNumber:        row.OrderNumber,
			CustomerName:       row.CustomerName,
			CustomerEmail:      row.CustomerEmail,
			TotalAmount:        row.TotalAmount,
			Status:             row.Status,
			StatusLabel:        row.StatusLabel,
			AllowedTransitions: row.AllowedTransitions,
			CreatedAt:          row.CreatedAt,
			UpdatedAt:          row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, req.Status, req.ChangedBy, req.Reason)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// GetOrderTimeline handles GET /api/orders/:id/timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrderTimelineQuery(orderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	timeline, err := s.getOrderTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]TimelineEntryResponse, len(timeline))
	for i, entry := range timeline {
		response[i] = TimelineEntryResponse{
			ID:        entry.ID.String(),
			OldStatus: entry.OldStatus,
			NewStatus: entry.NewStatus,
			ChangedBy: entry.ChangedBy,
			Reason:    entry.Reason,
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
