package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// ScheduleServiceOrderCommandHandler drives Confirmed -> Scheduled.
type ScheduleServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	notifier   ports.Notifier
}

// NewScheduleServiceOrderCommandHandler creates a handler for scheduling.
func NewScheduleServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory, notifier ports.Notifier) ScheduleServiceOrderCommandHandler {
	return ScheduleServiceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the schedule command.
func (h *ScheduleServiceOrderCommandHandler) Handle(ctx context.Context, cmd ScheduleServiceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ServiceOrderRepository()

	so, err := repo.Get(ctx, cmd.ServiceOrderID())
	if err != nil {
		return err
	}

	if err = so.Schedule(cmd.StartDate(), cmd.EndDate()); err != nil {
		return err
	}

	if err = repo.Update(ctx, so); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, so.OrderNumber(), so.Status().String())
	return nil
}
