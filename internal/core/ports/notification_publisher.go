package ports

import (
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
)

// NotificationPublisher fans a notification out to all currently connected
// observers. Delivery is best-effort and at-most-once: individual send
// failures are absorbed, there is no backlog or replay, and publishing with
// no observers connected is a no-op. None of the methods return an error:
// a slow or dead observer must never block or fail an order transition.
type NotificationPublisher interface {
	// Publish delivers a notification envelope to every connected observer.
	Publish(n *notification.Notification)

	// PublishOrderUpdate delivers an order snapshot envelope to every
	// connected observer after an accepted transition.
	PublishOrderUpdate(o *order.Order)
}
