package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrCompleteServiceOrderCommandIsNotConstructed = errors.New(
	"CompleteServiceOrderCommand must be created via NewCompleteServiceOrderCommand constructor",
)

// CompleteServiceOrderCommand represents finished work with the technician's
// notes and an optional customer signature.
type CompleteServiceOrderCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID  kernel.UUID
	completionNotes string
	signature       string

	guard guard.ConstructorGuard
}

// NewCompleteServiceOrderCommand creates a command to complete service work.
// The signature may be empty.
func NewCompleteServiceOrderCommand(serviceOrderID kernel.UUID, completionNotes, signature string) (CompleteServiceOrderCommand, error) {
	cmd := CompleteServiceOrderCommand{
		signature: signature,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setServiceOrderID(serviceOrderID),
		cmd.setCompletionNotes(completionNotes),
	); err != nil {
		return CompleteServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteServiceOrderCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c CompleteServiceOrderCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

// CompletionNotes returns the technician's notes.
func (c CompleteServiceOrderCommand) CompletionNotes() string {
	return c.completionNotes
}

// Signature returns the optional customer sign-off.
func (c CompleteServiceOrderCommand) Signature() string {
	return c.signature
}

func (c *CompleteServiceOrderCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}

func (c *CompleteServiceOrderCommand) setCompletionNotes(completionNotes string) error {
	if completionNotes == "" {
		return errs.NewValueIsRequiredError("completionNotes")
	}
	c.completionNotes = completionNotes
	return nil
}
