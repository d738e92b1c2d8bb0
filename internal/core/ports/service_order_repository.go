package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/serviceorder"
)

// ServiceOrderRepository defines the persistence contract for service order
// aggregates, including their attached expenses.
type ServiceOrderRepository interface {
	// Add persists a new service order aggregate to storage.
	Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Update persists changes to an existing service order aggregate,
	// including expense additions and decisions. The write is guarded by
	// the aggregate's version token.
	Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error

	// Get retrieves a service order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error)

	// GetAllCompletedUninvoiced retrieves completed service orders that
	// have not been invoiced yet. Used by the unresolved expense reminder job.
	GetAllCompletedUninvoiced(ctx context.Context) ([]*serviceorder.ServiceOrder, error)
}
