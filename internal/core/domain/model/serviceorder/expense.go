package serviceorder

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrExpenseIsNotConstructed is returned when an Expense instance was not
	// created through the NewExpense factory method.
	ErrExpenseIsNotConstructed = errors.New("Expense must be created via NewExpense constructor")

	// ErrExpenseAlreadyDecided is returned when approving or rejecting an
	// expense that already reached Approved or Rejected.
	ErrExpenseAlreadyDecided = errors.New("expense is already decided")
)

// ApprovalStatus represents the decision state of a single expense.
// Approved and Rejected are both terminal for the expense.
type ApprovalStatus int

const (
	// ApprovalUnknown represents an invalid or undefined approval status.
	ApprovalUnknown ApprovalStatus = iota

	// ApprovalPending is the initial status of a submitted expense.
	ApprovalPending

	// ApprovalApproved marks an expense counted into the invoice total.
	ApprovalApproved

	// ApprovalRejected marks an expense excluded from the invoice total.
	ApprovalRejected
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalUnknown:  "Unknown",
		ApprovalPending:  "Pending",
		ApprovalApproved: "Approved",
		ApprovalRejected: "Rejected",
	}
}

// Validate checks if the ApprovalStatus value is a defined state.
func (s ApprovalStatus) Validate() error {
	if s < ApprovalPending || s > ApprovalRejected {
		return errs.NewValueIsInvalidErrorWithCause("approval status",
			fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the human-readable name of the approval status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Expense is a reimbursement request attached to a service order. It starts
// Pending and is decided exactly once: Approve and Reject are terminal, and
// only Approved expenses count into the invoice total.
type Expense struct {
	// id is the unique identifier for the expense
	id kernel.UUID

	// description explains what the expense covers
	description string

	// amount is the claimed amount
	amount kernel.Money

	// status is the decision state of the expense
	status ApprovalStatus

	// approvedBy records who approved the expense (empty unless approved)
	approvedBy string

	// rejectReason records why the expense was rejected (empty unless rejected)
	rejectReason string

	// submittedAt is when the expense was submitted
	submittedAt time.Time

	// guard ensures the expense was created via NewExpense
	guard kernel.ConstructorGuard
}

// NewExpense creates a pending expense claim.
func NewExpense(id kernel.UUID, description string, amount kernel.Money) (*Expense, error) {
	e := &Expense{
		status:      ApprovalPending,
		submittedAt: time.Now().UTC(),
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setDescription(description),
		e.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreExpense reconstructs an expense from persistence.
func RestoreExpense(
	id kernel.UUID,
	description string,
	amount kernel.Money,
	status ApprovalStatus,
	approvedBy string,
	rejectReason string,
	submittedAt time.Time,
) (*Expense, error) {
	e, err := NewExpense(id, description, amount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	e.status = status
	e.approvedBy = approvedBy
	e.rejectReason = rejectReason
	e.submittedAt = submittedAt
	return e, nil
}

// Validate ensures the Expense was created through NewExpense.
func (e *Expense) Validate() error {
	if e == nil || e.guard.Validate(ErrExpenseIsNotConstructed) != nil {
		return ErrExpenseIsNotConstructed
	}
	return nil
}

// ID returns the expense's unique identifier.
func (e *Expense) ID() kernel.UUID {
	return e.id
}

// Description returns what the expense covers.
func (e *Expense) Description() string {
	return e.description
}

// Amount returns the claimed amount.
func (e *Expense) Amount() kernel.Money {
	return e.amount
}

// Status returns the decision state of the expense.
func (e *Expense) Status() ApprovalStatus {
	return e.status
}

// ApprovedBy returns who approved the expense, or empty if not approved.
func (e *Expense) ApprovedBy() string {
	return e.approvedBy
}

// RejectReason returns why the expense was rejected, or empty if not rejected.
func (e *Expense) RejectReason() string {
	return e.rejectReason
}

// SubmittedAt returns when the expense was submitted.
func (e *Expense) SubmittedAt() time.Time {
	return e.submittedAt
}

// IsPending reports whether the expense still awaits a decision.
func (e *Expense) IsPending() bool {
	return e.status == ApprovalPending
}

// Approve marks the expense as approved by the given approver.
// Fails with ErrExpenseAlreadyDecided if a decision was already made.
func (e *Expense) Approve(approvedBy string) error {
	if approvedBy == "" {
		return errs.NewValueIsRequiredError("approvedBy")
	}

	if e.status != ApprovalPending {
		return fmt.Errorf("%w: expense is %s", ErrExpenseAlreadyDecided, e.status)
	}

	e.status = ApprovalApproved
	e.approvedBy = approvedBy
	return nil
}

// Reject marks the expense as rejected for the given reason.
// Fails with ErrExpenseAlreadyDecided if a decision was already made.
func (e *Expense) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	if e.status != ApprovalPending {
		return fmt.Errorf("%w: expense is %s", ErrExpenseAlreadyDecided, e.status)
	}

	e.status = ApprovalRejected
	e.rejectReason = reason
	return nil
}

func (e *Expense) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Expense) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	e.description = description
	return nil
}

func (e *Expense) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	e.amount = amount
	return nil
}
