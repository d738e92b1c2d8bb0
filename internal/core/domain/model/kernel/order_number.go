package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

const (
	// OrderNumberPrefixOrder is the prefix assigned to physical product orders.
	OrderNumberPrefixOrder = "ORD"

	// OrderNumberPrefixService is the prefix assigned to service orders.
	OrderNumberPrefixService = "SRV"
)

// ErrOrderNumberIsNotConstructed is returned when attempting to use an improperly
// initialized OrderNumber. Order numbers must be created via GenerateOrderNumber
// or OrderNumberFromString.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via GenerateOrderNumber or OrderNumberFromString constructors")

// OrderNumber is a unique, lexically sortable token identifying an order to
// humans and external systems, e.g. "ORD-20260830143015-9F2A41C7".
//
// The format is PREFIX-TIMESTAMP-RANDOM: a UTC second-resolution timestamp
// keeps numbers roughly monotonic so they sort by creation time, and an
// 8-hex-digit random suffix makes collisions within the same second
// practically impossible. Orders and service orders share the same scheme and
// differ only in prefix, so numbering stays unique across both kinds.
type OrderNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// GenerateOrderNumber creates a fresh order number with the given prefix.
// The prefix must be non-empty; use OrderNumberPrefixOrder or
// OrderNumberPrefixService.
func GenerateOrderNumber(prefix string) (OrderNumber, error) {
	if prefix == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number prefix")
	}

	value := fmt.Sprintf("%s-%s-%08X",
		prefix,
		time.Now().UTC().Format("20060102150405"),
		rand.Uint32(),
	)

	return OrderNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// OrderNumberFromString reconstructs an OrderNumber from its persisted form.
// The value must be non-empty and carry the PREFIX-TIMESTAMP-RANDOM shape.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}

	if strings.Count(s, "-") != 2 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not match the PREFIX-TIMESTAMP-RANDOM format", s))
	}

	return OrderNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the order number token.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers for equality.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks that the OrderNumber was created through one of its constructors.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}
