package order

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is returned when an event is not defined for the
	// current status. Undefined pairs are rejected, never silently ignored.
	ErrInvalidTransition = errors.New("order status transition is not allowed")

	// ErrOrderAlreadyFinalized is returned when any event other than a
	// permitted refund arrives at a terminal status.
	ErrOrderAlreadyFinalized = errors.New("order is already finalized")

	// ErrCancellationWindowClosed is returned when cancellation is requested
	// after the order has shipped. This is a business rejection, distinct
	// from an undefined transition.
	ErrCancellationWindowClosed = errors.New("cancellation window is closed, order has shipped")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so that
// adding a status forces every transition site to be revisited.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered ──┐
//	   │            │              │                                 │
//	   └────────────┴──────────────┴──> Cancelled ──────> Refunded <─┘
//
// Delivered, Cancelled and Refunded are terminal; the only event accepted
// at a terminal status is Refund, and only from Delivered or Cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at checkout.
	// The order awaits payment confirmation.
	StatusPending

	// StatusConfirmed indicates payment was confirmed for the order.
	StatusConfirmed

	// StatusProcessing indicates the order is being picked and packed.
	StatusProcessing

	// StatusShipped indicates the order left the warehouse.
	// A tracking number is recorded alongside this transition.
	StatusShipped

	// StatusDelivered indicates the order reached the customer.
	// Terminal except for a post-delivery refund.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before shipment.
	// Terminal except for a post-cancellation refund.
	StatusCancelled

	// StatusRefunded indicates payment was reversed. Final state.
	StatusRefunded
)

// Event names a lifecycle transition request applied to a Status.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// EventConfirm records payment confirmation.
	EventConfirm

	// EventStartProcessing moves a confirmed order into fulfilment.
	EventStartProcessing

	// EventShip records the shipment leaving the warehouse.
	EventShip

	// EventDeliver records delivery to the customer.
	EventDeliver

	// EventCancel cancels an order before shipment.
	EventCancel

	// EventRefund reverses payment after delivery or cancellation.
	EventRefund
)

type transition struct {
	from  Status
	event Event
}

// getTransitionTable returns the complete set of defined (status, event)
// pairs. Every pair absent from this table is rejected.
func getTransitionTable() map[transition]Status {
	return map[transition]Status{
		{StatusPending, EventConfirm}:           StatusConfirmed,
		{StatusConfirmed, EventStartProcessing}: StatusProcessing,
		{StatusProcessing, EventShip}:           StatusShipped,
		{StatusShipped, EventDeliver}:           StatusDelivered,
		{StatusPending, EventCancel}:            StatusCancelled,
		{StatusConfirmed, EventCancel}:          StatusCancelled,
		{StatusProcessing, EventCancel}:         StatusCancelled,
		{StatusDelivered, EventRefund}:          StatusRefunded,
		{StatusCancelled, EventRefund}:          StatusRefunded,
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusConfirmed:  "Confirmed",
		StatusProcessing: "Processing",
		StatusShipped:    "Shipped",
		StatusDelivered:  "Delivered",
		StatusCancelled:  "Cancelled",
		StatusRefunded:   "Refunded",
	}
}

func getEventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:         "Unknown",
		EventConfirm:         "Confirm",
		EventStartProcessing: "StartProcessing",
		EventShip:            "Ship",
		EventDeliver:         "Deliver",
		EventCancel:          "Cancel",
		EventRefund:          "Refund",
	}
}

// Validate checks if the Status value is a defined lifecycle state.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusRefunded {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
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

// IsTerminal reports whether the status admits no further fulfilment work.
// Refund remains possible from Delivered and Cancelled.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRefunded
}

// Apply resolves an event against the transition table.
//
// Rejections, in order of precedence:
//   - Cancel after shipment or delivery fails with ErrCancellationWindowClosed
//   - any other undefined event at a terminal status fails with
//     ErrOrderAlreadyFinalized
//   - every remaining undefined pair fails with ErrInvalidTransition
//
// Returns:
//   - (next status, nil) for a defined pair
//   - (StatusUnknown, error) otherwise; the current status is never changed
func (s Status) Apply(event Event) (Status, error) {
	if next, ok := getTransitionTable()[transition{s, event}]; ok {
		return next, nil
	}

	if event == EventCancel && (s == StatusShipped || s == StatusDelivered) {
		return StatusUnknown, fmt.Errorf("%w: order is %s", ErrCancellationWindowClosed, s)
	}

	if s.IsTerminal() {
		return StatusUnknown, fmt.Errorf("%w: order is %s", ErrOrderAlreadyFinalized, s)
	}

	return StatusUnknown, fmt.Errorf("%w: cannot %s order in status %s", ErrInvalidTransition, event, s)
}
