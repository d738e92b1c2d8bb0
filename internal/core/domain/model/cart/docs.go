// Package cart provides the mutable pre-checkout shopping cart aggregate.
//
// A Cart belongs to exactly one owner (a user or an anonymous session) and
// holds an ordered collection of line items keyed by catalog item ID. Adding
// an item that is already present merges into the existing line: quantities
// are summed and the unit price is updated to the latest supplied value
// (last-write-wins). Prices are captured per line at add time; the cart never
// stores a pricing snapshot and recomputes its subtotal live from the current
// line items.
//
// Carts live from the first add until checkout converts them into an
// immutable order, or until an explicit clear. The package never expires cart
// contents on its own; retention policy belongs to the surrounding service.
package cart
