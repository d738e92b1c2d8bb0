package jobs

import (
	"context"
	"log/slog"

	"commerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpenseReminderJob surfaces completed service orders that cannot be
// invoiced because expense claims are still awaiting a decision.
type ExpenseReminderJob struct {
	uowFactory commands.ServiceOrderUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewExpenseReminderJob creates a job that checks for unresolved expenses
// every hour.
func NewExpenseReminderJob(uowFactory commands.ServiceOrderUoWFactory, logger *slog.Logger) *ExpenseReminderJob {
	return &ExpenseReminderJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "expense_reminder_job"),
	}
}

// Start begins the hourly check.
func (j *ExpenseReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Expense reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expense reminder job started (running every hour)")
	return nil
}

// Stop stops the expense reminder job.
func (j *ExpenseReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expense reminder job stopped")
}

func (j *ExpenseReminderJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	uninvoiced, err := uow.ServiceOrderRepository().GetAllCompletedUninvoiced(ctx)
	if err != nil {
		return err
	}

	for _, so := range uninvoiced {
		if !so.HasPendingExpenses() {
			continue
		}

		pending := 0
		for _, expense := range so.Expenses() {
			if expense.IsPending() {
				pending++
			}
		}

		j.logger.WarnContext(ctx, "Service order blocked from invoicing by pending expenses",
			"order_number", so.OrderNumber().String(),
			"pending_expenses", pending,
		)
	}

	return nil
}
