package ports

import "context"

// PaymentProvider is the boundary to the external payment collaborator.
// The engine never initiates a payment session; it only consumes the
// payment intent reference and the confirmation signal.
type PaymentProvider interface {
	// IsConfirmed reports whether the payment intent has been confirmed
	// by the payment collaborator.
	IsConfirmed(ctx context.Context, paymentIntentID string) (bool, error)
}
