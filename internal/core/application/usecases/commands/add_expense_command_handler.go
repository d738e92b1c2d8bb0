package commands

import (
	"context"

	"commerce/internal/core/domain/model/serviceorder"
)

// AddExpenseCommandHandler attaches pending expense claims to service orders.
type AddExpenseCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewAddExpenseCommandHandler creates a handler for expense submission.
func NewAddExpenseCommandHandler(uowFactory ServiceOrderUoWFactory) AddExpenseCommandHandler {
	return AddExpenseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-expense command.
func (h *AddExpenseCommandHandler) Handle(ctx context.Context, cmd AddExpenseCommand) error {
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

	expense, err := serviceorder.NewExpense(cmd.ExpenseID(), cmd.Description(), cmd.Amount())
	if err != nil {
		return err
	}

	if err = so.AddExpense(expense); err != nil {
		return err
	}

	if err = repo.Update(ctx, so); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
