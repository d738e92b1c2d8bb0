package commands

import (
	"context"
)

// RemoveItemFromCartCommandHandler handles cart line removal.
type RemoveItemFromCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveItemFromCartCommandHandler creates a handler for cart removal operations.
func NewRemoveItemFromCartCommandHandler(uowFactory CartUoWFactory) RemoveItemFromCartCommandHandler {
	return RemoveItemFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-item command.
func (h *RemoveItemFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveItemFromCartCommand) error {
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

	if err = crt.RemoveItem(cmd.CatalogItemID()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, crt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
