package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves the notification feed from the
// database, newest first.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification feed
// queries. Requires a GORM database connection for query execution.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the feed query: the newest notifications up to the page
// limit, plus the unread count over the entire store.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			title,
			message,
			order_id,
			is_read,
			created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	feed := make([]NotificationResponse, 0, query.Limit())
	for rows.Next() {
		var resp NotificationResponse
		var id uuid.UUID
		var kind int
		var orderID *uuid.UUID

		err = rows.Scan(
			&id,
			&kind,
			&resp.Title,
			&resp.Message,
			&orderID,
			&resp.IsRead,
			&resp.CreatedAt,
		)
		if err != nil {
			return GetNotificationsQueryResponse{}, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetNotificationsQueryResponse{}, idErr
		}
		resp.ID = notificationID

		if orderID != nil {
			linkedID, linkErr := kernel.UUIDFromBytes((*orderID)[:])
			if linkErr != nil {
				return GetNotificationsQueryResponse{}, linkErr
			}
			resp.OrderID = &linkedID
		}

		notificationType := notification.Type(kind)
		if typeErr := notificationType.Validate(); typeErr != nil {
			return GetNotificationsQueryResponse{}, typeErr
		}
		resp.Type = notificationType.String()

		feed = append(feed, resp)
	}

	if err = rows.Err(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	var unread int64
	err = h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM notifications WHERE is_read = false`).
		Scan(&unread).Error
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	return GetNotificationsQueryResponse{
		Notifications: feed,
		UnreadCount:   unread,
	}, nil
}
