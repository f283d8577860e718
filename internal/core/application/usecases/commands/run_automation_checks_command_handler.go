package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// Scanner thresholds. An alert for the same order and rule is not raised
// again until the re-alert interval has passed.
const (
	paymentOverdueAfter  = 24 * time.Hour
	shipmentDelayedAfter = 3 * 24 * time.Hour
	realertInterval      = 24 * time.Hour
)

// AutomationCheckResult reports how many alerts one scan raised per rule.
type AutomationCheckResult struct {
	OverduePayments  int
	DelayedShipments int
}

// RunAutomationChecksCommandHandler is the automation scanner. Each scan
// runs two independent rules: orders awaiting payment for too long, and
// shipped orders that have not moved for too long. A rule failing is logged
// and reported but never prevents the other rule from running.
type RunAutomationChecksCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewRunAutomationChecksCommandHandler creates a handler for automation
// scan operations.
func NewRunAutomationChecksCommandHandler(
	uowFactory UoWFactory, publisher ports.NotificationPublisher, logger *slog.Logger,
) RunAutomationChecksCommandHandler {
	return RunAutomationChecksCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "automation"),
	}
}

// Handle runs one scan over the order book.
// Both rules always run; the returned error joins any per-rule failures.
// Alerts that survive deduplication are persisted transactionally per rule
// and published after commit.
func (h *RunAutomationChecksCommandHandler) Handle(
	ctx context.Context, cmd RunAutomationChecksCommand,
) (AutomationCheckResult, error) {
	if err := cmd.Validate(); err != nil {
		return AutomationCheckResult{}, err
	}

	now := time.Now().UTC()
	result := AutomationCheckResult{}

	overdue, overdueErr := h.checkOverduePayments(ctx, now)
	if overdueErr != nil {
		h.logger.Error("overdue payment check failed", "error", overdueErr)
	}
	result.OverduePayments = overdue

	delayed, delayedErr := h.checkDelayedShipments(ctx, now)
	if delayedErr != nil {
		h.logger.Error("delayed shipment check failed", "error", delayedErr)
	}
	result.DelayedShipments = delayed

	return result, errors.Join(overdueErr, delayedErr)
}

// checkOverduePayments raises an alert for every order that has been
// awaiting payment longer than the overdue threshold.
func (h *RunAutomationChecksCommandHandler) checkOverduePayments(
	ctx context.Context, now time.Time,
) (int, error) {
	return h.runRule(ctx, now, func(ctx context.Context, repo ports.OrderRepository) ([]*order.Order, error) {
		return repo.GetAllInStatusCreatedBefore(ctx, order.AwaitingPayment, now.Add(-paymentOverdueAfter))
	}, notification.TypePaymentOverdue, "Payment Overdue", func(o *order.Order) string {
		return fmt.Sprintf("Order %s has been awaiting payment for over 24 hours", o.OrderNumber())
	})
}

// checkDelayedShipments raises an alert for every shipped order that has not
// been updated within the delay threshold.
func (h *RunAutomationChecksCommandHandler) checkDelayedShipments(
	ctx context.Context, now time.Time,
) (int, error) {
	return h.runRule(ctx, now, func(ctx context.Context, repo ports.OrderRepository) ([]*order.Order, error) {
		return repo.GetAllInStatusNotUpdatedSince(ctx, order.Shipped, now.Add(-shipmentDelayedAfter))
	}, notification.TypeShipmentDelayed, "Shipment Delayed", func(o *order.Order) string {
		return fmt.Sprintf("Order %s has been in transit for over 3 days", o.OrderNumber())
	})
}

// runRule executes one scanner rule in its own transaction: select the
// flagged orders, drop those already alerted within the re-alert interval,
// and persist one notification per remaining order. Alerts are published
// only after the transaction commits.
func (h *RunAutomationChecksCommandHandler) runRule(
	ctx context.Context,
	now time.Time,
	selectOrders func(ctx context.Context, repo ports.OrderRepository) ([]*order.Order, error),
	kind notification.Type,
	title string,
	message func(o *order.Order) string,
) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	flagged, err := selectOrders(ctx, uow.OrderRepository())
	if err != nil {
		return 0, err
	}

	notificationRepo := uow.NotificationRepository()
	raised := make([]*notification.Notification, 0, len(flagged))

	for _, flaggedOrder := range flagged {
		orderID := flaggedOrder.ID()

		exists, existsErr := notificationRepo.ExistsRecent(ctx, orderID, kind, now.Add(-realertInterval))
		if existsErr != nil {
			return 0, existsErr
		}
		if exists {
			continue
		}

		alert, alertErr := notification.NewNotification(
			kernel.NewUUID(), kind, title, message(flaggedOrder), &orderID,
		)
		if alertErr != nil {
			return 0, alertErr
		}

		if addErr := notificationRepo.Add(ctx, alert); addErr != nil {
			return 0, addErr
		}

		raised = append(raised, alert)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, alert := range raised {
		h.publisher.Publish(alert)
	}

	return len(raised), nil
}
