package payment

import (
	"context"
	"encoding/json"

	"github.com/tair/payments-api/internal/payment/usecase/command"
	"github.com/tair/payments-api/kafka"
	"github.com/tair/payments-api/pkg/apperror"
	"github.com/tair/payments-api/pkg/logger"
)

// NewPaymentScheduledHandler imports payment.scheduled events through the import command
func NewPaymentScheduledHandler(importer *command.ImportPaymentHandler) kafka.EventHandler {
	return func(ctx context.Context, payload []byte) error {
		var event kafka.PaymentScheduledEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return apperror.Validation("malformed payment.scheduled event: %v", err)
		}

		payment, err := importer.Handle(ctx, command.ImportPaymentCommand{
			Recipient:     event.Recipient,
			Amount:        event.Amount,
			Currency:      event.Currency,
			ScheduledDate: event.ScheduledDate,
			Status:        event.Status,
		})
		if err != nil {
			return err
		}

		logger.Info(ctx).
			Str("event_id", event.EventID).
			Str("payment_id", payment.ID.String()).
			Str("recipient", payment.Recipient).
			Msg("Scheduled payment imported")
		return nil
	}
}
