package commands

import (
	"context"
)

// DecideExpenseCommandHandler records approval decisions on expense claims.
type DecideExpenseCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewDecideExpenseCommandHandler creates a handler for expense decisions.
func NewDecideExpenseCommandHandler(uowFactory ServiceOrderUoWFactory) DecideExpenseCommandHandler {
	return DecideExpenseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decide-expense command.
func (h *DecideExpenseCommandHandler) Handle(ctx context.Context, cmd DecideExpenseCommand) error {
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

	if cmd.Approve() {
		err = so.ApproveExpense(cmd.ExpenseID(), cmd.ApprovedBy())
	} else {
		err = so.RejectExpense(cmd.ExpenseID(), cmd.Reason())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, so); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
