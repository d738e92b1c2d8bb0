package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrConfirmServiceOrderCommandIsNotConstructed = errors.New(
	"ConfirmServiceOrderCommand must be created via NewConfirmServiceOrderCommand constructor",
)

// ConfirmServiceOrderCommand represents a booking confirmation for a pending
// service order.
type ConfirmServiceOrderCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmServiceOrderCommand creates a command to confirm a service order.
func NewConfirmServiceOrderCommand(serviceOrderID kernel.UUID) (ConfirmServiceOrderCommand, error) {
	cmd := ConfirmServiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setServiceOrderID(serviceOrderID); err != nil {
		return ConfirmServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmServiceOrderCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c ConfirmServiceOrderCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

func (c *ConfirmServiceOrderCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}
