package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// HoldServiceWorkCommandHandler drives InProgress -> OnHold.
type HoldServiceWorkCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	notifier   ports.Notifier
}

// NewHoldServiceWorkCommandHandler creates a handler for work holds.
func NewHoldServiceWorkCommandHandler(uowFactory ServiceOrderUoWFactory, notifier ports.Notifier) HoldServiceWorkCommandHandler {
	return HoldServiceWorkCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the hold command.
func (h *HoldServiceWorkCommandHandler) Handle(ctx context.Context, cmd HoldServiceWorkCommand) error {
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

	if err = so.Hold(); err != nil {
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
