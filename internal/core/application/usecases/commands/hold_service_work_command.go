package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrHoldServiceWorkCommandIsNotConstructed = errors.New(
	"HoldServiceWorkCommand must be created via NewHoldServiceWorkCommand constructor",
)

// HoldServiceWorkCommand represents a pause of in-progress work.
type HoldServiceWorkCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHoldServiceWorkCommand creates a command to put service work on hold.
func NewHoldServiceWorkCommand(serviceOrderID kernel.UUID) (HoldServiceWorkCommand, error) {
	cmd := HoldServiceWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setServiceOrderID(serviceOrderID); err != nil {
		return HoldServiceWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HoldServiceWorkCommand) Validate() error {
	return c.guard.Validate(ErrHoldServiceWorkCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c HoldServiceWorkCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

func (c *HoldServiceWorkCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}
