// Package order provides domain entities and business logic for product order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning frozen items, the pricing snapshot, and
//     the fulfilment fields mutated across the lifecycle
//   - Item: A frozen order line captured at checkout
//   - Status/Event: A state machine with an explicit transition table
//
// Key business rules:
//   - Items and pricing are frozen at checkout and never re-read from the
//     catalog or the source cart
//   - Status follows Pending -> Confirmed -> Processing -> Shipped -> Delivered,
//     with Cancelled reachable before shipment and Refunded after delivery or
//     cancellation
//   - Confirmation requires an attached payment intent
//   - Undefined (status, event) pairs are rejected, never silently ignored
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
