package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrAddExpenseCommandIsNotConstructed = errors.New(
	"AddExpenseCommand must be created via NewAddExpenseCommand constructor",
)

// AddExpenseCommand represents a reimbursement claim submitted against a
// service order that has not been invoiced or cancelled.
type AddExpenseCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID
	expenseID      kernel.UUID
	description    string
	amount         kernel.Money

	guard guard.ConstructorGuard
}

// NewAddExpenseCommand creates a command to attach an expense claim.
func NewAddExpenseCommand(
	serviceOrderID kernel.UUID,
	expenseID kernel.UUID,
	description string,
	amount kernel.Money,
) (AddExpenseCommand, error) {
	cmd := AddExpenseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setServiceOrderID(serviceOrderID),
		cmd.setExpenseID(expenseID),
		cmd.setDescription(description),
		cmd.setAmount(amount),
	); err != nil {
		return AddExpenseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddExpenseCommand) Validate() error {
	return c.guard.Validate(ErrAddExpenseCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c AddExpenseCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

// ExpenseID returns the identifier assigned to the new expense.
func (c AddExpenseCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

// Description returns what the expense covers.
func (c AddExpenseCommand) Description() string {
	return c.description
}

// Amount returns the claimed amount.
func (c AddExpenseCommand) Amount() kernel.Money {
	return c.amount
}

func (c *AddExpenseCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}

func (c *AddExpenseCommand) setExpenseID(expenseID kernel.UUID) error {
	if err := expenseID.Validate(); err != nil {
		return err
	}
	c.expenseID = expenseID
	return nil
}

func (c *AddExpenseCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *AddExpenseCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	c.amount = amount
	return nil
}
