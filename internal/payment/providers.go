package payment

import (
	"gorm.io/gorm"

	"github.com/tair/payments-api/internal/payment/domain"
	"github.com/tair/payments-api/internal/payment/repository"
	"github.com/tair/payments-api/internal/payment/usecase/command"
	"github.com/tair/payments-api/internal/payment/usecase/query"
)

// ProvideGormPaymentRepository provides the PostgreSQL payment repository with tracing
func ProvideGormPaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return repository.NewPaymentRepositoryWithTracing(repository.NewGormPaymentRepository(db))
}

// ProvideMemoryPaymentRepository provides the in-process payment repository with tracing
func ProvideMemoryPaymentRepository(seed ...domain.Payment) domain.PaymentRepository {
	return repository.NewPaymentRepositoryWithTracing(repository.NewMemoryPaymentRepository(seed...))
}

// Command Handlers Providers
func ProvideImportPaymentHandler(repo domain.PaymentRepository) *command.ImportPaymentHandler {
	return command.NewImportPaymentHandler(repo)
}

// Query Handlers Providers
func ProvideListPaymentsHandler(repo domain.PaymentRepository) *query.ListPaymentsHandler {
	return query.NewListPaymentsHandler(repo)
}

func ProvideListRecipientsHandler(repo domain.PaymentRepository) *query.ListRecipientsHandler {
	return query.NewListRecipientsHandler(repo)
}
