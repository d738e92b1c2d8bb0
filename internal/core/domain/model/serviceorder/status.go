package serviceorder

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is returned when an event is not defined for the
	// current status. Undefined pairs are rejected, never silently ignored;
	// holding an already held order or resuming a running one rejects too.
	ErrInvalidTransition = errors.New("service order status transition is not allowed")

	// ErrServiceOrderAlreadyFinalized is returned for any event arriving at a
	// terminal status (Invoiced or Cancelled).
	ErrServiceOrderAlreadyFinalized = errors.New("service order is already finalized")
)

// Status represents the lifecycle state of a service order.
// It implements a state machine with an explicit transition table.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Scheduled ──> InProgress ──> Completed ──> Invoiced
//	                                          │    ↑
//	                                          ▼    │
//	                                         OnHold┘
//
// Cancelled is reachable from every non-terminal status. Completed is not
// terminal by itself; a completed order stays open for expense submission
// until invoiced. The only terminal statuses are Invoiced and Cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at checkout.
	StatusPending

	// StatusConfirmed indicates the service booking was confirmed.
	StatusConfirmed

	// StatusScheduled indicates a work window has been agreed.
	StatusScheduled

	// StatusInProgress indicates the technician is on the job.
	StatusInProgress

	// StatusOnHold indicates work is paused and awaits a resume.
	StatusOnHold

	// StatusCompleted indicates work finished. The order stays open for
	// expense submission until invoiced.
	StatusCompleted

	// StatusInvoiced indicates totals were finalized. Final state.
	StatusInvoiced

	// StatusCancelled indicates the booking was cancelled. Final state.
	StatusCancelled
)

// Event names a lifecycle transition request applied to a Status.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// EventConfirm confirms the service booking.
	EventConfirm

	// EventSchedule records the agreed work window.
	EventSchedule

	// EventStart begins the work.
	EventStart

	// EventHold pauses in-progress work.
	EventHold

	// EventResume continues held work.
	EventResume

	// EventComplete records the work as finished.
	EventComplete

	// EventInvoice finalizes totals from approved expenses.
	EventInvoice

	// EventCancel cancels the booking from any non-terminal status.
	EventCancel
)

type transition struct {
	from  Status
	event Event
}

// getTransitionTable returns the complete set of defined (status, event)
// pairs. Every pair absent from this table is rejected.
func getTransitionTable() map[transition]Status {
	return map[transition]Status{
		{StatusPending, EventConfirm}:     StatusConfirmed,
		{StatusConfirmed, EventSchedule}:  StatusScheduled,
		{StatusScheduled, EventStart}:     StatusInProgress,
		{StatusInProgress, EventHold}:     StatusOnHold,
		{StatusOnHold, EventResume}:       StatusInProgress,
		{StatusInProgress, EventComplete}: StatusCompleted,
		{StatusCompleted, EventInvoice}:   StatusInvoiced,
		{StatusPending, EventCancel}:      StatusCancelled,
		{StatusConfirmed, EventCancel}:    StatusCancelled,
		{StatusScheduled, EventCancel}:    StatusCancelled,
		{StatusInProgress, EventCancel}:   StatusCancelled,
		{StatusOnHold, EventCancel}:       StatusCancelled,
		{StatusCompleted, EventCancel}:    StatusCancelled,
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusConfirmed:  "Confirmed",
		StatusScheduled:  "Scheduled",
		StatusInProgress: "InProgress",
		StatusOnHold:     "OnHold",
		StatusCompleted:  "Completed",
		StatusInvoiced:   "Invoiced",
		StatusCancelled:  "Cancelled",
	}
}

func getEventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:  "Unknown",
		EventConfirm:  "Confirm",
		EventSchedule: "Schedule",
		EventStart:    "Start",
		EventHold:     "Hold",
		EventResume:   "Resume",
		EventComplete: "Complete",
		EventInvoice:  "Invoice",
		EventCancel:   "Cancel",
	}
}

// Validate checks if the Status value is a defined lifecycle state.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid service order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// String returns the human-readable name of the event.
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusInvoiced || s == StatusCancelled
}

// Apply resolves an event against the transition table.
//
// Rejections, in order of precedence:
//   - any event at a terminal status fails with ErrServiceOrderAlreadyFinalized
//   - every remaining undefined pair fails with ErrInvalidTransition
//
// Returns:
//   - (next status, nil) for a defined pair
//   - (StatusUnknown, error) otherwise; the current status is never changed
func (s Status) Apply(event Event) (Status, error) {
	if next, ok := getTransitionTable()[transition{s, event}]; ok {
		return next, nil
	}

	if s.IsTerminal() {
		return StatusUnknown, fmt.Errorf("%w: service order is %s", ErrServiceOrderAlreadyFinalized, s)
	}

	return StatusUnknown, fmt.Errorf("%w: cannot %s service order in status %s", ErrInvalidTransition, event, s)
}
