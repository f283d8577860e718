package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a request to mark every unread
// notification as read in one sweep.
type MarkAllNotificationsReadCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a parameterless command to mark
// all notifications read.
func NewMarkAllNotificationsReadCommand() MarkAllNotificationsReadCommand {
	command := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkAllNotificationsReadCommandIsNotConstructed if validation fails.
func (c *MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}
