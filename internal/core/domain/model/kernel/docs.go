// Package kernel provides core domain primitives shared by every aggregate in
// the commerce system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A fixed-point value object for exact monetary arithmetic in minor units
//   - OrderNumber: A unique, sortable order token shared by orders and service orders
//   - PricingSnapshot: The immutable priced totals captured for an order at checkout
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// Monetary amounts never touch binary floating point: Money carries int64 minor
// units and percentage rates are applied through exact decimal arithmetic, so
// totals are reproducible byte-for-byte across platforms.
package kernel
