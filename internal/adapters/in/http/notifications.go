package http

import (
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// NotificationItemResponse is the wire representation of one notification.
type NotificationItemResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   *string   `json:"orderId"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationFeedResponse is the body of GET /api/notifications.
type NotificationFeedResponse struct {
	Notifications []NotificationItemResponse `json:"notifications"`
	UnreadCount   int64                      `json:"unreadCount"`
}

// MarkAllReadResponse reports how many notifications a read-all sweep
// affected.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// GetNotifications handles GET /api/notifications with an optional ?limit=.
func (s *Server) GetNotifications(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "limit must be an integer",
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetNotificationsQuery(limit)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	feed, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	items := make([]NotificationItemResponse, len(feed.Notifications))
	for i, n := range feed.Notifications {
		var orderID *string
		if n.OrderID != nil {
			id := n.OrderID.String()
			orderID = &id
		}

		items[i] = NotificationItemResponse{
			ID:        n.ID.String(),
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			OrderID:   orderID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, NotificationFeedResponse{
		Notifications: items,
		UnreadCount:   feed.UnreadCount,
	})
}

// MarkNotificationRead handles PATCH /api/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.markReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	cmd := commands.NewMarkAllNotificationsReadCommand()

	updated, err := s.markAllReadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MarkAllReadResponse{Updated: updated})
}
