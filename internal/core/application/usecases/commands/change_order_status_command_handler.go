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

// ChangeOrderStatusCommandHandler is the transition engine. It loads the
// order, applies the requested transition against the status graph, and
// writes the updated order, its audit entry, and a status-change
// notification in a single transaction. The order update is conditioned on
// the status the order was loaded with, so two concurrent transitions on the
// same order cannot both succeed.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transition
// operations.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory, publisher ports.NotificationPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
// Returns errs.ObjectNotFoundError if the order does not exist,
// errs.TransitionNotAllowedError if the status graph forbids the move, and
// errs.ConcurrentUpdateError if another transition won the race. On success
// the updated order is returned and events are published after commit.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate, oldStatus); err != nil {
		return nil, err
	}

	reason := cmd.Reason()
	if reason == "" {
		reason = fmt.Sprintf("Status changed from %s to %s", oldStatus, aggregate.Status())
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		aggregate.ID(),
		oldStatus.String(),
		aggregate.Status().String(),
		cmd.ChangedBy(),
		reason,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.AuditLogRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	orderID := aggregate.ID()
	alert, err := notification.NewNotification(
		kernel.NewUUID(),
		notification.TypeStatusChange,
		"Order Status Updated",
		fmt.Sprintf("Order %s moved from %s to %s", aggregate.OrderNumber(), oldStatus.Label(), aggregate.Status().Label()),
		&orderID,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.NotificationRepository().Add(ctx, alert); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(alert)
	h.publisher.PublishOrderUpdate(aggregate)

	return aggregate, nil
}
