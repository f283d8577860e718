package ws

import (
	"log/slog"
	"sync"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
)

// Observer receives envelopes from the hub. Implementations must be safe for
// concurrent Send calls.
type Observer interface {
	Send(envelope Envelope) error
	Close() error
}

// Hub maintains the set of connected observers and broadcasts envelopes to
// all of them. An observer whose Send fails is closed and removed; the
// remaining observers still receive the event.
type Hub struct {
	mu        sync.RWMutex
	observers map[Observer]struct{}
	logger    *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		observers: make(map[Observer]struct{}),
		logger:    logger.With("component", "ws"),
	}
}

// Register adds an observer and sends it the connection acknowledgement.
// An observer that cannot even receive the acknowledgement is dropped
// immediately.
func (h *Hub) Register(observer Observer) {
	h.mu.Lock()
	h.observers[observer] = struct{}{}
	count := len(h.observers)
	h.mu.Unlock()

	h.logger.Info("observer connected", "observers", count)

	if err := observer.Send(connectedEnvelope()); err != nil {
		h.logger.Warn("observer dropped on handshake", "error", err)
		h.Unregister(observer)
	}
}

// Unregister removes an observer and closes it. Removing an observer that is
// not registered is a no-op.
func (h *Hub) Unregister(observer Observer) {
	h.mu.Lock()
	_, ok := h.observers[observer]
	if ok {
		delete(h.observers, observer)
	}
	count := len(h.observers)
	h.mu.Unlock()

	if ok {
		_ = observer.Close()
		h.logger.Info("observer disconnected", "observers", count)
	}
}

// ObserverCount returns the number of currently connected observers.
func (h *Hub) ObserverCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers)
}

// Publish delivers a notification envelope to every connected observer.
func (h *Hub) Publish(n *notification.Notification) {
	h.broadcast(notificationEnvelope(n))
}

// PublishOrderUpdate delivers an order snapshot envelope to every connected
// observer.
func (h *Hub) PublishOrderUpdate(o *order.Order) {
	h.broadcast(orderEnvelope(o))
}

// broadcast sends the envelope to a snapshot of the current observer set.
// Observers that fail to receive are removed after the sweep so one dead
// connection cannot starve the others.
func (h *Hub) broadcast(envelope Envelope) {
	h.mu.RLock()
	observers := make([]Observer, 0, len(h.observers))
	for observer := range h.observers {
		observers = append(observers, observer)
	}
	h.mu.RUnlock()

	var failed []Observer
	for _, observer := range observers {
		if err := observer.Send(envelope); err != nil {
			h.logger.Warn("observer send failed", "type", envelope.Type, "error", err)
			failed = append(failed, observer)
		}
	}

	for _, observer := range failed {
		h.Unregister(observer)
	}
}
