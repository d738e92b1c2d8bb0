package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrStartServiceWorkCommandIsNotConstructed = errors.New(
	"StartServiceWorkCommand must be created via NewStartServiceWorkCommand constructor",
)

// StartServiceWorkCommand represents the technician beginning scheduled work.
type StartServiceWorkCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartServiceWorkCommand creates a command to start service work.
func NewStartServiceWorkCommand(serviceOrderID kernel.UUID) (StartServiceWorkCommand, error) {
	cmd := StartServiceWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setServiceOrderID(serviceOrderID); err != nil {
		return StartServiceWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartServiceWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartServiceWorkCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c StartServiceWorkCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

func (c *StartServiceWorkCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}
