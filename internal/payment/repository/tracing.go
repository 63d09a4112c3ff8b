package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/payments-api/internal/payment/domain"
)

var tracer = otel.Tracer("payment-repository")

// PaymentRepositoryWithTracing wraps any payment repository with spans
type PaymentRepositoryWithTracing struct {
	next domain.PaymentRepository
}

// NewPaymentRepositoryWithTracing creates a new repository with tracing
func NewPaymentRepositoryWithTracing(next domain.PaymentRepository) *PaymentRepositoryWithTracing {
	return &PaymentRepositoryWithTracing{next: next}
}

// FetchPage with tracing
func (r *PaymentRepositoryWithTracing) FetchPage(ctx context.Context, filter domain.FilterSet) ([]domain.Payment, int64, error) {
	spec := domain.BuildQuerySpec(filter)
	ctx, span := tracer.Start(ctx, "repository.FetchPage",
		trace.WithAttributes(
			attribute.StringSlice("payment.recipient_tokens", spec.RecipientTokens),
			attribute.Bool("payment.date_from", spec.DateFrom != nil),
			attribute.Bool("payment.date_to", spec.DateTo != nil),
			attribute.Int("payment.limit", spec.Limit),
			attribute.Int("payment.offset", spec.Offset),
		),
	)
	defer span.End()

	payments, total, err := r.next.FetchPage(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int64("payment.total", total),
		attribute.Int("payment.count", len(payments)),
	)
	return payments, total, nil
}

// FetchDistinctRecipients with tracing
func (r *PaymentRepositoryWithTracing) FetchDistinctRecipients(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "repository.FetchDistinctRecipients")
	defer span.End()

	recipients, err := r.next.FetchDistinctRecipients(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("payment.recipients", len(recipients)))
	return recipients, nil
}

// Create with tracing
func (r *PaymentRepositoryWithTracing) Create(ctx context.Context, payment *domain.Payment) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("payment.recipient", payment.Recipient),
			attribute.String("payment.currency", payment.Currency),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, payment); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("payment.id", payment.ID.String()))
	return nil
}
