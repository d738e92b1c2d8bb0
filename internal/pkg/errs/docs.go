// Package errs provides standardized error types for the commerce application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsOutOfRangeError: For when a numeric value lies outside its bounds
//   - VersionIsInvalidError: For optimistic-concurrency version conflicts
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// These types map onto the engine's error taxonomy: validation failures use
// ValueIsInvalid/ValueIsRequired/ValueIsOutOfRange, missing carts and orders use
// ObjectNotFound, and serialized aggregate writes use VersionIsInvalid. Illegal
// lifecycle transitions are domain sentinel errors owned by the aggregate
// packages, not by errs.
package errs
