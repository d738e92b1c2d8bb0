package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// CompleteServiceOrderCommandHandler drives InProgress -> Completed.
type CompleteServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	notifier   ports.Notifier
}

// NewCompleteServiceOrderCommandHandler creates a handler for work completion.
func NewCompleteServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory, notifier ports.Notifier) CompleteServiceOrderCommandHandler {
	return CompleteServiceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the complete command.
func (h *CompleteServiceOrderCommandHandler) Handle(ctx context.Context, cmd CompleteServiceOrderCommand) error {
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

	if err = so.Complete(cmd.CompletionNotes(), cmd.Signature()); err != nil {
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
