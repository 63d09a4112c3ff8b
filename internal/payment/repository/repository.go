package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/payments-api/internal/payment/domain"
	"github.com/tair/payments-api/pkg/apperror"
)

// GormPaymentRepository executes payment query specs against PostgreSQL
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM backed payment repository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FetchPage counts the matching rows, then loads the requested page.
// The page query is skipped when the offset is already past the last match.
func (r *GormPaymentRepository) FetchPage(ctx context.Context, filter domain.FilterSet) ([]domain.Payment, int64, error) {
	spec := domain.BuildQuerySpec(filter)

	var total int64
	if err := r.filtered(ctx, spec).Count(&total).Error; err != nil {
		return nil, 0, apperror.Storage(err, "count payments")
	}

	payments := []domain.Payment{}
	if total == 0 || int64(spec.Offset) >= total {
		return payments, total, nil
	}

	q := r.filtered(ctx, spec)
	for _, term := range spec.Order {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: term.Column}, Desc: term.Desc})
	}
	if err := q.Limit(spec.Limit).Offset(spec.Offset).Find(&payments).Error; err != nil {
		return nil, 0, apperror.Storage(err, "select payments")
	}

	return payments, total, nil
}

// FetchDistinctRecipients lists every recipient, soft-deleted rows included
func (r *GormPaymentRepository) FetchDistinctRecipients(ctx context.Context) ([]string, error) {
	recipients := []string{}
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&domain.Payment{}).
		Distinct("recipient").
		Order("recipient ASC").
		Pluck("recipient", &recipients).Error
	if err != nil {
		return nil, apperror.Storage(err, "select recipients")
	}
	return recipients, nil
}

func (r *GormPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return apperror.Storage(err, "insert payment")
	}
	return nil
}

// filtered starts a fresh statement carrying the QuerySpec predicates
func (r *GormPaymentRepository) filtered(ctx context.Context, spec domain.QuerySpec) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Payment{})

	if patterns := spec.RecipientPatterns(); len(patterns) > 0 {
		conds := make([]string, len(patterns))
		args := make([]interface{}, len(patterns))
		for i, p := range patterns {
			conds[i] = "recipient ILIKE ?"
			args[i] = p
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	if spec.DateFrom != nil {
		q = q.Where("scheduled_date >= ?", spec.DateFrom.Format(domain.DateLayout))
	}
	if spec.DateTo != nil {
		q = q.Where("scheduled_date <= ?", spec.DateTo.Format(domain.DateLayout))
	}
	return q
}
