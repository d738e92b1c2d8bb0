package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrDecideExpenseCommandIsNotConstructed = errors.New(
	"DecideExpenseCommand must be created via NewDecideExpenseCommand constructor",
)

// DecideExpenseCommand represents an approval decision on a pending expense
// claim. Approvals carry the approver's name, rejections carry a reason.
type DecideExpenseCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID
	expenseID      kernel.UUID
	approve        bool
	approvedBy     string
	reason         string

	guard guard.ConstructorGuard
}

// NewDecideExpenseCommand creates a command to approve or reject an expense.
func NewDecideExpenseCommand(
	serviceOrderID kernel.UUID,
	expenseID kernel.UUID,
	approve bool,
	approvedBy string,
	reason string,
) (DecideExpenseCommand, error) {
	cmd := DecideExpenseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setServiceOrderID(serviceOrderID),
		cmd.setExpenseID(expenseID),
		cmd.setDecision(approve, approvedBy, reason),
	); err != nil {
		return DecideExpenseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideExpenseCommand) Validate() error {
	return c.guard.Validate(ErrDecideExpenseCommandIsNotConstructed)
}

// ServiceOrderID returns the target service order's identifier.
func (c DecideExpenseCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}

// ExpenseID returns the expense being decided.
func (c DecideExpenseCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

// Approve reports whether the decision is an approval.
func (c DecideExpenseCommand) Approve() bool {
	return c.approve
}

// ApprovedBy returns who approved the expense. Empty for rejections.
func (c DecideExpenseCommand) ApprovedBy() string {
	return c.approvedBy
}

// Reason returns the rejection reason. Empty for approvals.
func (c DecideExpenseCommand) Reason() string {
	return c.reason
}

func (c *DecideExpenseCommand) setServiceOrderID(serviceOrderID kernel.UUID) error {
	if err := serviceOrderID.Validate(); err != nil {
		return err
	}
	c.serviceOrderID = serviceOrderID
	return nil
}

func (c *DecideExpenseCommand) setExpenseID(expenseID kernel.UUID) error {
	if err := expenseID.Validate(); err != nil {
		return err
	}
	c.expenseID = expenseID
	return nil
}

func (c *DecideExpenseCommand) setDecision(approve bool, approvedBy string, reason string) error {
	if approve && approvedBy == "" {
		return errs.NewValueIsRequiredError("approvedBy")
	}
	if !approve && reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.approve = approve
	c.approvedBy = approvedBy
	c.reason = reason
	return nil
}
