package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrRunAutomationChecksCommandIsNotConstructed = errors.New(
	"RunAutomationChecksCommand must be created via NewRunAutomationChecksCommand constructor",
)

// RunAutomationChecksCommand triggers one scan of the order book for stuck
// orders. This batch operation raises overdue-payment and delayed-shipment
// alerts, deduplicated against recently raised ones.
//
// Example:
//
//	cmd := NewRunAutomationChecksCommand()
//	handler := NewRunAutomationChecksCommandHandler(uowFactory, publisher, logger)
//
//	// Run periodically from a scheduler
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Automation scan failed: %v", err)
//	}
type RunAutomationChecksCommand struct {
	guard guard.ConstructorGuard
}

// NewRunAutomationChecksCommand creates a command to trigger an automation
// scan. This is a parameterless command that inspects all eligible orders.
func NewRunAutomationChecksCommand() RunAutomationChecksCommand {
	command := RunAutomationChecksCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunAutomationChecksCommandIsNotConstructed if validation fails.
func (c *RunAutomationChecksCommand) Validate() error {
	return c.guard.Validate(ErrRunAutomationChecksCommandIsNotConstructed)
}
