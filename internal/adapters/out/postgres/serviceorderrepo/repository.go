package serviceorderrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/serviceorder"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormServiceOrderRepository implements ServiceOrderRepository using GORM.
type GormServiceOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceOrderRepository creates a new GORM service order repository.
func NewGormServiceOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceOrderRepository {
	return &GormServiceOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service order to the database.
func (r *GormServiceOrderRepository) Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing service order to the database. Lifecycle columns
// and the pricing snapshot are written because invoicing re-derives the
// expense component; expenses are upserted so decisions stick. The write is
// guarded by the version read at load time.
func (r *GormServiceOrderRepository) Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&ServiceOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"status":           dto.Status,
			"scheduled_start":  dto.ScheduledStart,
			"scheduled_end":    dto.ScheduledEnd,
			"completion_notes": dto.CompletionNotes,
			"signature":        dto.Signature,
			"cancel_reason":    dto.CancelReason,
			"expense_amount":   dto.Pricing.ExpenseAmount,
			"total":            dto.Pricing.Total,
			"version":          aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("service order")
	}

	if len(dto.Expenses) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"status", "approved_by", "reject_reason",
				}),
			}).
			Create(&dto.Expenses).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service order by ID.
func (r *GormServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("submitted_at") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllCompletedUninvoiced retrieves completed service orders that have not
// been invoiced yet.
func (r *GormServiceOrderRepository) GetAllCompletedUninvoiced(ctx context.Context) ([]*serviceorder.ServiceOrder, error) {
	var dtos []ServiceOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Expenses", func(db *gorm.DB) *gorm.DB { return db.Order("submitted_at") }).
		Find(&dtos, "status = ?", int(serviceorder.StatusCompleted)).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]*serviceorder.ServiceOrder, 0, len(dtos))
	for _, dto := range dtos {
		so, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, so)
	}

	return bookings, nil
}
