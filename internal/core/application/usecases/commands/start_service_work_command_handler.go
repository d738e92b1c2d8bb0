package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// StartServiceWorkCommandHandler drives Scheduled -> InProgress.
type StartServiceWorkCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	notifier   ports.Notifier
}

// NewStartServiceWorkCommandHandler creates a handler for work starts.
func NewStartServiceWorkCommandHandler(uowFactory ServiceOrderUoWFactory, notifier ports.Notifier) StartServiceWorkCommandHandler {
	return StartServiceWorkCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the start-work command.
func (h *StartServiceWorkCommandHandler) Handle(ctx context.Context, cmd StartServiceWorkCommand) error {
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

	if err = so.Start(); err != nil {
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
