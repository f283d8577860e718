// Package ws implements the NotificationPublisher port over WebSocket
// connections. The hub keeps the set of connected observers and fans every
// published event out to all of them. Delivery is best-effort: a send
// failure removes the observer and never propagates to the publisher's
// caller.
package ws

import (
	"time"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
)

// Envelope kinds understood by connected clients.
const (
	EnvelopeConnected    = "CONNECTED"
	EnvelopeNotification = "NOTIFICATION"
	EnvelopeOrderUpdate  = "ORDER_UPDATE"
)

// Envelope is the wire frame sent to observers. Data depends on Type:
// a NotificationData for NOTIFICATION, an OrderData for ORDER_UPDATE, and a
// greeting string for CONNECTED.
type Envelope struct {
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationData is the notification payload inside an envelope.
type NotificationData struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   *string   `json:"orderId"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderData is the order snapshot payload inside an envelope.
type OrderData struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func notificationEnvelope(n *notification.Notification) Envelope {
	var orderID *string
	if id := n.OrderID(); id != nil {
		s := id.String()
		orderID = &s
	}

	return Envelope{
		Type: EnvelopeNotification,
		Data: NotificationData{
			ID:        n.ID().String(),
			Type:      n.Type().String(),
			Title:     n.Title(),
			Message:   n.Message(),
			OrderID:   orderID,
			IsRead:    n.IsRead(),
			CreatedAt: n.CreatedAt(),
		},
		Timestamp: time.Now().UTC(),
	}
}

func orderEnvelope(o *order.Order) Envelope {
	return Envelope{
		Type: EnvelopeOrderUpdate,
		Data: OrderData{
			ID:            o.ID().String(),
			OrderNumber:   o.OrderNumber(),
			CustomerName:  o.CustomerName(),
			CustomerEmail: o.CustomerEmail(),
			TotalAmount:   o.TotalAmount(),
			Status:        o.Status().String(),
			CreatedAt:     o.CreatedAt(),
			UpdatedAt:     o.UpdatedAt(),
		},
		Timestamp: time.Now().UTC(),
	}
}

func connectedEnvelope() Envelope {
	return Envelope{
		Type:      EnvelopeConnected,
		Data:      "connected to order updates",
		Timestamp: time.Now().UTC(),
	}
}
