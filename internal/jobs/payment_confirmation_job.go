package jobs

import (
	"context"
	"errors"
	"log/slog"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PaymentConfirmationJob polls the payment provider for pending orders.
// Orders whose payment intent has been confirmed are moved to Confirmed
// through the regular command path.
type PaymentConfirmationJob struct {
	uowFactory commands.OrderUoWFactory
	provider   ports.PaymentProvider
	handler    commands.ConfirmOrderCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPaymentConfirmationJob creates a job that polls payment confirmations
// every 30 seconds.
func NewPaymentConfirmationJob(
	uowFactory commands.OrderUoWFactory,
	provider ports.PaymentProvider,
	handler commands.ConfirmOrderCommandHandler,
	logger *slog.Logger,
) *PaymentConfirmationJob {
	return &PaymentConfirmationJob{
		uowFactory: uowFactory,
		provider:   provider,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "payment_confirmation_job"),
	}
}

// Start begins polling every 30 seconds.
func (j *PaymentConfirmationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Payment confirmation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment confirmation job started (running every 30 seconds)")
	return nil
}

// Stop stops the payment confirmation job.
func (j *PaymentConfirmationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment confirmation job stopped")
}

func (j *PaymentConfirmationJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	pendingOrders, err := uow.OrderRepository().GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}

	for _, pending := range pendingOrders {
		if pending.PaymentIntentID() == "" {
			continue
		}

		confirmed, err := j.provider.IsConfirmed(ctx, pending.PaymentIntentID())
		if err != nil {
			j.logger.WarnContext(ctx, "Payment status check failed",
				"order_number", pending.OrderNumber().String(), "error", err)
			continue
		}
		if !confirmed {
			continue
		}

		cmd, err := commands.NewConfirmOrderCommand(pending.ID(), pending.PaymentIntentID())
		if err != nil {
			return err
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// The order may have been confirmed or cancelled concurrently.
			if errors.Is(err, order.ErrOrderAlreadyFinalized) ||
				errors.Is(err, order.ErrInvalidTransition) ||
				errors.Is(err, errs.ErrVersionIsInvalid) {
				continue
			}
			j.logger.ErrorContext(ctx, "Order confirmation failed",
				"order_number", pending.OrderNumber().String(), "error", err)
		}
	}

	return nil
}
