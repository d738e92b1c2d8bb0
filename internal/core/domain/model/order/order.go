package order

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPaymentNotConfirmed is returned when confirmation is requested while
	// no payment intent reference is attached to the order.
	ErrPaymentNotConfirmed = errors.New("payment is not confirmed, no payment intent is attached")
)

// Order is the immutable-goods aggregate produced at checkout. Its items and
// pricing snapshot are frozen at construction; only the lifecycle status and
// the fulfilment fields (payment intent, tracking number, delivery date,
// cancel reason) mutate afterwards.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number and customer
//   - Must own at least one frozen item
//   - The pricing snapshot reconciles at all times
//   - Status transitions follow the transition table in Status.Apply
//   - Can only be created through NewOrder or RestoreOrder
//
// The version field is the optimistic-concurrency token; persistence bumps it
// on every successful write, so two concurrent transition attempts on the
// same order serialize and the loser fails with a version conflict.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the unique human-facing token assigned at checkout
	orderNumber kernel.OrderNumber

	// customerID identifies the customer the order belongs to
	customerID kernel.UUID

	// items are the frozen lines captured at checkout
	items []*Item

	// pricing is the snapshot frozen at checkout
	pricing kernel.PricingSnapshot

	// status is the current state in the order lifecycle
	status Status

	// paymentIntentID references the payment session (empty until attached)
	paymentIntentID string

	// trackingNumber is recorded when the order ships
	trackingNumber string

	// deliveredAt is the actual delivery date (nil until delivered)
	deliveredAt *time.Time

	// cancelReason is recorded when the order is cancelled
	cancelReason string

	// createdAt is when the order was created at checkout
	createdAt time.Time

	// version is the optimistic-concurrency token used to serialize writes
	version int

	// guard ensures the order was created via a constructor
	guard kernel.ConstructorGuard
}

// NewOrder creates a Pending order from frozen checkout output.
//
// Parameters:
//   - id: unique identifier for the order
//   - orderNumber: unique token assigned by checkout
//   - customerID: the owner of the source cart
//   - items: frozen lines (at least one required)
//   - pricing: the snapshot computed at checkout
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	customerID kernel.UUID,
	items []*Item,
	pricing kernel.PricingSnapshot,
) (*Order, error) {
	o := &Order{
		status:    StatusPending,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// fulfilment fields and version token.
func RestoreOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	customerID kernel.UUID,
	items []*Item,
	pricing kernel.PricingSnapshot,
	status Status,
	paymentIntentID string,
	trackingNumber string,
	deliveredAt *time.Time,
	cancelReason string,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, customerID, items, pricing)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentIntentID = paymentIntentID
	o.trackingNumber = trackingNumber
	o.deliveredAt = deliveredAt
	o.cancelReason = cancelReason
	o.createdAt = createdAt
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the unique token assigned at checkout.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// CustomerID returns the identifier of the customer owning the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the frozen order lines.
// The returned slice is a copy; the lines themselves never mutate.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Pricing returns the pricing snapshot frozen at checkout.
func (o *Order) Pricing() kernel.PricingSnapshot {
	return o.pricing
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentIntentID returns the attached payment session reference.
// Empty until AttachPaymentIntent is called.
func (o *Order) PaymentIntentID() string {
	return o.paymentIntentID
}

// TrackingNumber returns the shipment tracking number.
// Empty until the order ships.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// DeliveredAt returns the actual delivery date, or nil if not delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelReason returns the reason recorded at cancellation.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency token for serialized writes.
func (o *Order) Version() int {
	return o.version
}

// AttachPaymentIntent records the payment session reference supplied by the
// payment collaborator. Allowed only while the order is Pending; confirmation
// requires an attached intent.
func (o *Order) AttachPaymentIntent(paymentIntentID string) error {
	if paymentIntentID == "" {
		return errs.NewValueIsRequiredError("paymentIntentId")
	}

	if o.status != StatusPending {
		return fmt.Errorf("%w: cannot attach payment intent to order in status %s",
			ErrInvalidTransition, o.status)
	}

	o.paymentIntentID = paymentIntentID
	return nil
}

// Confirm transitions the order from Pending to Confirmed.
// Fails with ErrPaymentNotConfirmed when no payment intent is attached.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Apply(EventConfirm)
	if err != nil {
		return err
	}

	if o.paymentIntentID == "" {
		return ErrPaymentNotConfirmed
	}

	o.status = newStatus
	return nil
}

// StartProcessing transitions the order from Confirmed to Processing.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.Apply(EventStartProcessing)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkShipped transitions the order from Processing to Shipped and records
// the shipment tracking number.
func (o *Order) MarkShipped(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	newStatus, err := o.status.Apply(EventShip)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.trackingNumber = trackingNumber
	return nil
}

// MarkDelivered transitions the order from Shipped to Delivered and records
// the actual delivery date.
func (o *Order) MarkDelivered(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}

	newStatus, err := o.status.Apply(EventDeliver)
	if err != nil {
		return err
	}

	o.status = newStatus
	at := deliveredAt.UTC()
	o.deliveredAt = &at
	return nil
}

// Cancel cancels the order and records the reason. Allowed from Pending,
// Confirmed and Processing; fails with ErrCancellationWindowClosed once the
// order has shipped.
func (o *Order) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Apply(EventCancel)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	return nil
}

// Refund reverses payment after delivery or cancellation.
// Refunded is the final state with no further transitions.
func (o *Order) Refund() error {
	newStatus, err := o.status.Apply(EventRefund)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

func (o *Order) setPricing(pricing kernel.PricingSnapshot) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}
