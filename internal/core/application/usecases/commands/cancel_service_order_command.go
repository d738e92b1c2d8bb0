package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrCancelServiceOrderCommandIsNotConstructed = errors.New(
	"CancelServiceOrderCommand must be created via NewCancelServiceOrderCommand constructor",
)

// CancelServiceOrderCommand represents a cancellation request for a booking
// that has not been invoiced yet.
type CancelServiceOrderCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID
	reason         string

	guard guard.ConstructorGuard
}

// NewCancelServiceOrderCommand creates a command to cancel a service order.
func NewCancelServiceOrderCommand(serviceOrderID kernel.UUID, reason string) (CancelServiceOrderCommand, error) {
	cmd := CancelServiceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setServiceOrderID(serviceOrderID),
		cmd.setReason(reason),
	); err != nil {
		return CancelServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelServiceOrderCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c CancelServiceOrderCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

// Reason returns the cancellation reason.
func (c CancelServiceOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelServiceOrderCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}

func (c *CancelServiceOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
