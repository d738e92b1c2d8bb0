// Package jobs provides scheduled background tasks for the commerce engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. PaymentConfirmationJob - Polls the payment provider every 30 seconds and confirms pending orders whose payment went through
// 2. ExpenseReminderJob - Runs every hour to flag completed service orders blocked from invoicing by undecided expense claims
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(orderUoWFactory, serviceOrderUoWFactory, paymentProvider, confirmOrderHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The confirmation job treats already-finalized orders and version conflicts as expected outcomes of concurrent processing
// - The reminder job only logs; invoicing stays an explicit operator action
// - Failed job starts will stop any already running jobs
package jobs
