package repository

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/payments-api/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// UserRepositoryWithTracing wraps a UserRepository with tracing
type UserRepositoryWithTracing struct {
	next domain.UserRepository
}

// NewUserRepositoryWithTracing creates a new repository with tracing
func NewUserRepositoryWithTracing(next domain.UserRepository) *UserRepositoryWithTracing {
	return &UserRepositoryWithTracing{next: next}
}

// Create with tracing
func (r *UserRepositoryWithTracing) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("user.username", user.Username),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, user); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.String("user.id", user.ID.String()))
	return nil
}

// FindByID with tracing
func (r *UserRepositoryWithTracing) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("user.id", id.String()),
		),
	)
	defer span.End()

	user, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user.username", user.Username))
	return user, nil
}

// FindActive with tracing
func (r *UserRepositoryWithTracing) FindActive(ctx context.Context) ([]domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindActive")
	defer span.End()

	users, err := r.next.FindActive(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("users.count", len(users)))
	return users, nil
}

// Update with tracing
func (r *UserRepositoryWithTracing) Update(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("user.id", user.ID.String()),
		),
	)
	defer span.End()

	if err := r.next.Update(ctx, user); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

// Deactivate with tracing
func (r *UserRepositoryWithTracing) Deactivate(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "repository.Deactivate",
		trace.WithAttributes(
			attribute.String("user.id", id.String()),
		),
	)
	defer span.End()

	if err := r.next.Deactivate(ctx, id); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
