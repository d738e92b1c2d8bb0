package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// CancelServiceOrderCommandHandler cancels bookings from any non-terminal status.
type CancelServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
	notifier   ports.Notifier
}

// NewCancelServiceOrderCommandHandler creates a handler for booking cancellations.
func NewCancelServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory, notifier ports.Notifier) CancelServiceOrderCommandHandler {
	return CancelServiceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancel command.
func (h *CancelServiceOrderCommandHandler) Handle(ctx context.Context, cmd CancelServiceOrderCommand) error {
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

	if err = so.Cancel(cmd.Reason()); err != nil {
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
