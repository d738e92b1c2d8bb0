package cart

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Kind distinguishes product carts from service carts. A cart's kind is fixed
// at creation and determines whether checkout produces an Order or a
// ServiceOrder.
type Kind int

const (
	// KindUnknown represents an invalid or undefined cart kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindProduct marks a cart holding physical products.
	KindProduct

	// KindService marks a cart holding service variants, where line
	// quantities carry estimated hours.
	KindService
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		KindProduct: "Product",
		KindService: "Service",
	}
}

// Validate checks that the Kind is Product or Service.
func (k Kind) Validate() error {
	if k != KindProduct && k != KindService {
		return errs.NewValueIsInvalidErrorWithCause("cart kind",
			fmt.Errorf("%d is not a valid cart kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}
