package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// ResumeServiceWorkCommandHandler drives OnHold -> InProgress.
type ResumeServiceWorkCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	notifier   ports.Notifier
}

// NewResumeServiceWorkCommandHandler creates a handler for work resumption.
func NewResumeServiceWorkCommandHandler(uowFactory ServiceOrderUoWFactory, notifier ports.Notifier) ResumeServiceWorkCommandHandler {
	return ResumeServiceWorkCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the resume command.
func (h *ResumeServiceWorkCommandHandler) Handle(ctx context.Context, cmd ResumeServiceWorkCommand) error {
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

	if err = so.Resume(); err != nil {
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
