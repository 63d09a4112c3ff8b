//go:build wireinject
// +build wireinject

package payment

import (
	"github.com/google/wire"

	"github.com/tair/payments-api/internal/payment/domain"
	"github.com/tair/payments-api/internal/payment/handler"
	"github.com/tair/payments-api/internal/payment/usecase/command"
	"github.com/tair/payments-api/pkg/middleware"
)

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideImportPaymentHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListPaymentsHandler,
	ProvideListRecipientsHandler,
)

// InitializeHandler initializes payment handler with all dependencies
func InitializeHandler(repo domain.PaymentRepository, metrics *middleware.Metrics) (*handler.PaymentHandler, error) {
	wire.Build(
		QueryHandlerSet,
		handler.NewPaymentHandlerWithDI,
	)
	return nil, nil
}

// InitializeImportHandler initializes the handler used by the payment-scheduled consumer
func InitializeImportHandler(repo domain.PaymentRepository) *command.ImportPaymentHandler {
	wire.Build(CommandHandlerSet)
	return nil
}
