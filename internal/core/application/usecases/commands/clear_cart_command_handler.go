package commands

import (
	"context"
)

// ClearCartCommandHandler handles explicit cart clearing.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing operations.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear-cart command.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	cartRepo := uow.CartRepository()

	crt, err := cartRepo.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	crt.Clear()

	if err = cartRepo.Update(ctx, crt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
