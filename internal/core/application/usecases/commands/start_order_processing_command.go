package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrStartOrderProcessingCommandIsNotConstructed = errors.New(
	"StartOrderProcessingCommand must be created via NewStartOrderProcessingCommand constructor",
)

// StartOrderProcessingCommand represents a request to move a confirmed order
// into fulfilment.
type StartOrderProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderProcessingCommand creates a command to start order processing.
func NewStartOrderProcessingCommand(orderID kernel.UUID) (StartOrderProcessingCommand, error) {
	cmd := StartOrderProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StartOrderProcessingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderProcessingCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderProcessingCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c StartOrderProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartOrderProcessingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
