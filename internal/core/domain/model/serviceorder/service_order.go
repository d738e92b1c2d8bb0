package serviceorder

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrServiceOrderIsNotConstructed is returned when a ServiceOrder instance
	// was not created through the NewServiceOrder factory method.
	ErrServiceOrderIsNotConstructed = errors.New(
		"ServiceOrder must be created via NewServiceOrder constructor")

	// ErrInvalidScheduleWindow is returned when the scheduled end date lies
	// before the start date.
	ErrInvalidScheduleWindow = errors.New("schedule window is invalid, end date is before start date")

	// ErrPendingExpensesUnresolved is returned when invoicing is attempted
	// while at least one expense still awaits an approval decision.
	ErrPendingExpensesUnresolved = errors.New("pending expenses must be approved or rejected before invoicing")
)

// ServiceOrder is the service booking aggregate produced at checkout. Like a
// product order its items and initial pricing snapshot are frozen; unlike a
// product order it accrues expense claims after creation, and Invoice is the
// single point where the snapshot's expense amount and total are recomputed
// from the approved expenses.
//
// ServiceOrder follows these invariants:
//   - Must have a valid unique identifier, order number and customer
//   - Must own at least one frozen item
//   - The pricing snapshot reconciles at all times
//   - Status transitions follow the transition table in Status.Apply
//   - Expenses may only be added before the order is Invoiced or Cancelled
//   - Invoicing requires every expense to be decided
//
// The version field is the optimistic-concurrency token bumped by
// persistence on every successful write.
type ServiceOrder struct {
	// id is the unique identifier for the service order
	id kernel.UUID

	// orderNumber is the unique human-facing token assigned at checkout
	orderNumber kernel.OrderNumber

	// customerID identifies the customer the booking belongs to
	customerID kernel.UUID

	// items are the frozen lines captured at checkout
	items []*Item

	// pricing is the snapshot frozen at checkout and recomputed once at Invoice
	pricing kernel.PricingSnapshot

	// status is the current state in the service order lifecycle
	status Status

	// scheduledStart and scheduledEnd bound the agreed work window
	scheduledStart *time.Time
	scheduledEnd   *time.Time

	// completionNotes records the technician's notes at completion
	completionNotes string

	// signature is the optional customer sign-off captured at completion
	signature string

	// cancelReason is recorded when the booking is cancelled
	cancelReason string

	// expenses are the reimbursement claims attached to the booking
	expenses []*Expense

	// createdAt is when the service order was created at checkout
	createdAt time.Time

	// version is the optimistic-concurrency token used to serialize writes
	version int

	// guard ensures the service order was created via a constructor
	guard kernel.ConstructorGuard
}

// NewServiceOrder creates a Pending service order from frozen checkout output.
func NewServiceOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	customerID kernel.UUID,
	items []*Item,
	pricing kernel.PricingSnapshot,
) (*ServiceOrder, error) {
	so := &ServiceOrder{
		status:    StatusPending,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		so.setID(id),
		so.setOrderNumber(orderNumber),
		so.setCustomerID(customerID),
		so.setItems(items),
		so.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	return so, nil
}

// RestoreServiceOrder reconstructs a service order from persistence,
// including its expenses and version token.
func RestoreServiceOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	customerID kernel.UUID,
	items []*Item,
	pricing kernel.PricingSnapshot,
	status Status,
	scheduledStart *time.Time,
	scheduledEnd *time.Time,
	completionNotes string,
	signature string,
	cancelReason string,
	expenses []*Expense,
	createdAt time.Time,
	version int,
) (*ServiceOrder, error) {
	so, err := NewServiceOrder(id, orderNumber, customerID, items, pricing)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, expense := range expenses {
		if err = expense.Validate(); err != nil {
			return nil, err
		}
	}

	so.status = status
	so.scheduledStart = scheduledStart
	so.scheduledEnd = scheduledEnd
	so.completionNotes = completionNotes
	so.signature = signature
	so.cancelReason = cancelReason
	so.expenses = expenses
	so.createdAt = createdAt
	so.version = version
	return so, nil
}

// Validate ensures the ServiceOrder instance was properly constructed.
func (so *ServiceOrder) Validate() error {
	if so == nil || so.guard.Validate(ErrServiceOrderIsNotConstructed) != nil {
		return ErrServiceOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two service orders by their unique identifiers.
func (so *ServiceOrder) IsEqual(other *ServiceOrder) bool {
	return other != nil && so.id.IsEqual(other.id)
}

// ID returns the service order's unique identifier.
func (so *ServiceOrder) ID() kernel.UUID {
	return so.id
}

// OrderNumber returns the unique token assigned at checkout.
func (so *ServiceOrder) OrderNumber() kernel.OrderNumber {
	return so.orderNumber
}

// CustomerID returns the identifier of the customer owning the booking.
func (so *ServiceOrder) CustomerID() kernel.UUID {
	return so.customerID
}

// Items returns the frozen service order lines.
// The returned slice is a copy; the lines themselves never mutate.
func (so *ServiceOrder) Items() []*Item {
	items := make([]*Item, len(so.items))
	copy(items, so.items)
	return items
}

// Pricing returns the current pricing snapshot. It equals the checkout
// snapshot until Invoice recomputes the expense amount.
func (so *ServiceOrder) Pricing() kernel.PricingSnapshot {
	return so.pricing
}

// Status returns the current status of the service order.
func (so *ServiceOrder) Status() Status {
	return so.status
}

// ScheduledStart returns the start of the agreed work window, or nil.
func (so *ServiceOrder) ScheduledStart() *time.Time {
	return so.scheduledStart
}

// ScheduledEnd returns the end of the agreed work window, or nil.
func (so *ServiceOrder) ScheduledEnd() *time.Time {
	return so.scheduledEnd
}

// CompletionNotes returns the technician's notes recorded at completion.
func (so *ServiceOrder) CompletionNotes() string {
	return so.completionNotes
}

// Signature returns the customer sign-off captured at completion, if any.
func (so *ServiceOrder) Signature() string {
	return so.signature
}

// CancelReason returns the reason recorded at cancellation.
func (so *ServiceOrder) CancelReason() string {
	return so.cancelReason
}

// Expenses returns the attached expense claims.
// The returned slice is a copy; the expenses themselves are owned entities.
func (so *ServiceOrder) Expenses() []*Expense {
	expenses := make([]*Expense, len(so.expenses))
	copy(expenses, so.expenses)
	return expenses
}

// CreatedAt returns the service order's creation time.
func (so *ServiceOrder) CreatedAt() time.Time {
	return so.createdAt
}

// Version returns the optimistic-concurrency token for serialized writes.
func (so *ServiceOrder) Version() int {
	return so.version
}

// Confirm transitions the booking from Pending to Confirmed.
func (so *ServiceOrder) Confirm() error {
	newStatus, err := so.status.Apply(EventConfirm)
	if err != nil {
		return err
	}

	so.status = newStatus
	return nil
}

// Schedule records the agreed work window and transitions the booking from
// Confirmed to Scheduled. Fails with ErrInvalidScheduleWindow when the end
// date lies before the start date.
func (so *ServiceOrder) Schedule(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("endDate")
	}

	newStatus, err := so.status.Apply(EventSchedule)
	if err != nil {
		return err
	}

	if endDate.Before(startDate) {
		return fmt.Errorf("%w: %s is before %s",
			ErrInvalidScheduleWindow,
			endDate.Format(time.RFC3339),
			startDate.Format(time.RFC3339))
	}

	so.status = newStatus
	start := startDate.UTC()
	end := endDate.UTC()
	so.scheduledStart = &start
	so.scheduledEnd = &end
	return nil
}

// Start transitions the booking from Scheduled to InProgress.
func (so *ServiceOrder) Start() error {
	newStatus, err := so.status.Apply(EventStart)
	if err != nil {
		return err
	}

	so.status = newStatus
	return nil
}

// Hold pauses in-progress work. Holding an already held booking is rejected
// as an invalid transition, not silently accepted.
func (so *ServiceOrder) Hold() error {
	newStatus, err := so.status.Apply(EventHold)
	if err != nil {
		return err
	}

	so.status = newStatus
	return nil
}

// Resume continues held work. Resuming a running booking is rejected as an
// invalid transition, not silently accepted.
func (so *ServiceOrder) Resume() error {
	newStatus, err := so.status.Apply(EventResume)
	if err != nil {
		return err
	}

	so.status = newStatus
	return nil
}

// Complete records the work as finished with the technician's notes and an
// optional customer signature.
func (so *ServiceOrder) Complete(completionNotes, signature string) error {
	if completionNotes == "" {
		return errs.NewValueIsRequiredError("completionNotes")
	}

	newStatus, err := so.status.Apply(EventComplete)
	if err != nil {
		return err
	}

	so.status = newStatus
	so.completionNotes = completionNotes
	so.signature = signature
	return nil
}

// Invoice finalizes the booking. This is the single point where the pricing
// snapshot is recomputed: the expense amount becomes the sum of Approved
// expenses and the total follows.
//
// Fails with ErrPendingExpensesUnresolved when any expense still awaits a
// decision; every expense must be Approved or Rejected first.
func (so *ServiceOrder) Invoice() error {
	newStatus, err := so.status.Apply(EventInvoice)
	if err != nil {
		return err
	}

	approvedTotal := kernel.ZeroMoney()
	for _, expense := range so.expenses {
		if expense.IsPending() {
			return fmt.Errorf("%w: expense %s is pending", ErrPendingExpensesUnresolved, expense.ID())
		}
		if expense.Status() != ApprovalApproved {
			continue
		}

		approvedTotal, err = approvedTotal.Add(expense.Amount())
		if err != nil {
			return err
		}
	}

	pricing, err := so.pricing.WithExpenseAmount(approvedTotal)
	if err != nil {
		return err
	}

	so.pricing = pricing
	so.status = newStatus
	return nil
}

// Cancel cancels the booking from any non-terminal status and records the
// reason.
func (so *ServiceOrder) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := so.status.Apply(EventCancel)
	if err != nil {
		return err
	}

	so.status = newStatus
	so.cancelReason = reason
	return nil
}

// AddExpense attaches a pending expense claim to the booking. Expenses may
// be added at any point before the booking is Invoiced or Cancelled,
// including after completion.
func (so *ServiceOrder) AddExpense(expense *Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	if so.status.IsTerminal() {
		return fmt.Errorf("%w: cannot add expense, service order is %s",
			ErrServiceOrderAlreadyFinalized, so.status)
	}

	so.expenses = append(so.expenses, expense)
	return nil
}

// ApproveExpense approves the expense with the given identifier.
func (so *ServiceOrder) ApproveExpense(expenseID kernel.UUID, approvedBy string) error {
	expense, err := so.findExpense(expenseID)
	if err != nil {
		return err
	}
	return expense.Approve(approvedBy)
}

// RejectExpense rejects the expense with the given identifier.
func (so *ServiceOrder) RejectExpense(expenseID kernel.UUID, reason string) error {
	expense, err := so.findExpense(expenseID)
	if err != nil {
		return err
	}
	return expense.Reject(reason)
}

// HasPendingExpenses reports whether any expense still awaits a decision.
func (so *ServiceOrder) HasPendingExpenses() bool {
	for _, expense := range so.expenses {
		if expense.IsPending() {
			return true
		}
	}
	return false
}

func (so *ServiceOrder) findExpense(expenseID kernel.UUID) (*Expense, error) {
	if err := expenseID.Validate(); err != nil {
		return nil, err
	}

	for _, expense := range so.expenses {
		if expense.ID().IsEqual(expenseID) {
			return expense, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("expenseId", expenseID.String())
}

func (so *ServiceOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	so.id = id
	return nil
}

func (so *ServiceOrder) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	so.orderNumber = orderNumber
	return nil
}

func (so *ServiceOrder) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	so.customerID = customerID
	return nil
}

func (so *ServiceOrder) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	so.items = items
	return nil
}

func (so *ServiceOrder) setPricing(pricing kernel.PricingSnapshot) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	so.pricing = pricing
	return nil
}
