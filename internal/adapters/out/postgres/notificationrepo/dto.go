// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notifications. The composite index serves the scanner's deduplication
// lookup by order, type, and recency.
type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type      int        `gorm:"index:idx_notifications_dedup"`
	Title     string
	Message   string
	OrderID   *uuid.UUID `gorm:"type:uuid;index:idx_notifications_dedup"`
	IsRead    bool       `gorm:"index"`
	CreatedAt time.Time  `gorm:"index:idx_notifications_dedup;index"`
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		Type:      int(aggregate.Type()),
		Title:     aggregate.Title(),
		Message:   aggregate.Message(),
		OrderID:   orderID,
		IsRead:    aggregate.IsRead(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification using
// RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		linkedID, linkErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if linkErr != nil {
			return nil, linkErr
		}
		orderID = &linkedID
	}

	return notification.RestoreNotification(
		id,
		notification.Type(dto.Type),
		dto.Title,
		dto.Message,
		orderID,
		dto.IsRead,
		dto.CreatedAt,
	)
}
