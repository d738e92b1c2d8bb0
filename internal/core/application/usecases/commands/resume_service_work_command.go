package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrResumeServiceWorkCommandIsNotConstructed = errors.New(
	"ResumeServiceWorkCommand must be created via NewResumeServiceWorkCommand constructor",
)

// ResumeServiceWorkCommand represents a continuation of held work.
type ResumeServiceWorkCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeServiceWorkCommand creates a command to resume held service work.
func NewResumeServiceWorkCommand(serviceOrderID kernel.UUID) (ResumeServiceWorkCommand, error) {
	cmd := ResumeServiceWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setServiceOrderID(serviceOrderID); err != nil {
		return ResumeServiceWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeServiceWorkCommand) Validate() error {
	return c.guard.Validate(ErrResumeServiceWorkCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c ResumeServiceWorkCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

func (c *ResumeServiceWorkCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}
