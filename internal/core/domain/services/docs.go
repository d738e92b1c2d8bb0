// Package services contains stateless domain services that coordinate
// behavior across aggregates.
//
// PricingEngine turns frozen line totals into a reconciled pricing snapshot,
// reading tax and shipping rates from external lookup tables through ports.
// CheckoutConverter consumes a live cart and produces an immutable Pending
// Order or ServiceOrder with frozen items, a snapshot, and a fresh order
// number.
//
// Both services are pure coordination logic: they hold no mutable state and
// never persist anything themselves.
package services
