package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
)

// Notifier receives lifecycle transition events for user-facing dispatch.
// Notification is fire-and-forget from the engine's perspective: a failed
// notification must never roll back the transition that triggered it, so
// implementations log failures instead of returning them.
type Notifier interface {
	// NotifyStatusChanged reports that the order identified by orderNumber
	// moved into the given status.
	NotifyStatusChanged(ctx context.Context, orderNumber kernel.OrderNumber, status string)
}
