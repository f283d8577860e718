package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in the awaiting payment status; the order row, its
// creation audit entry, and a new-order notification are written in a single
// transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Jane Cooper", "jane@example.com", 149.90)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now persisted and awaiting payment
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence and a publisher for
// post-commit event delivery.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory, publisher ports.NotificationPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// Generates an order number, persists the order together with its audit
// entry and notification, and publishes events after the transaction
// commits. Publishing is fire-and-forget and cannot fail the creation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		order.GenerateOrderNumber(),
		cmd.CustomerName(),
		cmd.CustomerEmail(),
		cmd.TotalAmount(),
	)
	if err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		newOrder.ID(),
		audit.StatusNew,
		newOrder.Status().String(),
		audit.ActorSystem,
		"Order created",
	)
	if err != nil {
		return nil, err
	}

	orderID := newOrder.ID()
	alert, err := notification.NewNotification(
		kernel.NewUUID(),
		notification.TypeNewOrder,
		"New Order Received",
		fmt.Sprintf("Order %s from %s for $%.2f", newOrder.OrderNumber(), newOrder.CustomerName(), newOrder.TotalAmount()),
		&orderID,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.AuditLogRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.NotificationRepository().Add(ctx, alert); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(alert)
	h.publisher.PublishOrderUpdate(newOrder)

	return newOrder, nil
}
