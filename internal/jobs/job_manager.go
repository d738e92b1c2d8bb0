package jobs

import (
	"fmt"
	"log/slog"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentConfirmationJob *PaymentConfirmationJob
	expenseReminderJob     *ExpenseReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	orderUoWFactory commands.OrderUoWFactory,
	serviceOrderUoWFactory commands.ServiceOrderUoWFactory,
	paymentProvider ports.PaymentProvider,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentConfirmationJob: NewPaymentConfirmationJob(orderUoWFactory, paymentProvider, confirmOrderHandler, logger),
		expenseReminderJob:     NewExpenseReminderJob(serviceOrderUoWFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentConfirmationJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment confirmation job: %w", err)
	}

	if err := jm.expenseReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.paymentConfirmationJob.Stop()
		return fmt.Errorf("failed to start expense reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expenseReminderJob.Stop()
	jm.paymentConfirmationJob.Stop()
}
