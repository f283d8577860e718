package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// status. The target status is parsed from its wire name, so an unknown
// status is rejected before any order is loaded.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, "SHIPPED", "ADMIN", "Handed to carrier")
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher)
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	changedBy string
	reason    string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// newStatus must be a recognized status wire name. changedBy defaults to the
// admin actor when empty; reason is optional free text.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID, newStatus string, changedBy string, reason string,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	statusCommand.setChangedBy(changedBy)
	statusCommand.reason = reason

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// ChangedBy returns the actor identifier recorded in the audit trail.
func (c ChangeOrderStatusCommand) ChangedBy() string {
	return c.changedBy
}

// Reason returns the optional free-text reason for the change.
func (c ChangeOrderStatusCommand) Reason() string {
	return c.reason
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus string) error {
	status, err := order.StatusFromString(newStatus)
	if err != nil {
		return err
	}

	c.newStatus = status
	return nil
}

func (c *ChangeOrderStatusCommand) setChangedBy(changedBy string) {
	if changedBy == "" {
		changedBy = audit.ActorAdmin
	}

	c.changedBy = changedBy
}
