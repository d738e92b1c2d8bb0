package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// StartOrderProcessingCommandHandler drives Confirmed -> Processing.
type StartOrderProcessingCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewStartOrderProcessingCommandHandler creates a handler for processing starts.
func NewStartOrderProcessingCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) StartOrderProcessingCommandHandler {
	return StartOrderProcessingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the start-processing command.
func (h *StartOrderProcessingCommandHandler) Handle(ctx context.Context, cmd StartOrderProcessingCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.StartProcessing(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyStatusChanged(ctx, o.OrderNumber(), o.Status().String())
	return nil
}
