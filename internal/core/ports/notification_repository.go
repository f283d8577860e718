package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// Update persists changes to an existing notification. The only mutable
	// attribute is the read flag.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// ExistsRecent reports whether a notification of the given type tied to
	// the given order was created at or after the cutoff. Used by the
	// automation scanner to deduplicate alerts within the re-alert window.
	ExistsRecent(ctx context.Context, orderID kernel.UUID, kind notification.Type, since time.Time) (bool, error)

	// MarkAllRead flips every unread notification to read and returns the
	// number affected.
	MarkAllRead(ctx context.Context) (int64, error)
}
