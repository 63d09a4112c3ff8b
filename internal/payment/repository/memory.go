package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tair/payments-api/internal/payment/domain"
)

// MemoryPaymentRepository evaluates query specs over an in-process row set.
// It backs STORE_DRIVER=memory and the handler tests.
type MemoryPaymentRepository struct {
	mu   sync.RWMutex
	rows []domain.Payment
}

// NewMemoryPaymentRepository creates a repository holding a copy of seed
func NewMemoryPaymentRepository(seed ...domain.Payment) *MemoryPaymentRepository {
	rows := make([]domain.Payment, len(seed))
	copy(rows, seed)
	return &MemoryPaymentRepository{rows: rows}
}

func (r *MemoryPaymentRepository) FetchPage(ctx context.Context, filter domain.FilterSet) ([]domain.Payment, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	spec := domain.BuildQuerySpec(filter)

	r.mu.RLock()
	matched := make([]domain.Payment, 0, len(r.rows))
	for _, p := range r.rows {
		if p.DeletedAt.Valid {
			continue
		}
		if spec.Matches(p) {
			matched = append(matched, p)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return domain.Less(matched[i], matched[j])
	})

	total := int64(len(matched))
	if spec.Offset >= len(matched) {
		return []domain.Payment{}, total, nil
	}
	end := spec.Offset + spec.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[spec.Offset:end], total, nil
}

func (r *MemoryPaymentRepository) FetchDistinctRecipients(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	seen := make(map[string]struct{}, len(r.rows))
	recipients := []string{}
	for _, p := range r.rows {
		if _, ok := seen[p.Recipient]; ok {
			continue
		}
		seen[p.Recipient] = struct{}{}
		recipients = append(recipients, p.Recipient)
	}
	r.mu.RUnlock()

	sort.Strings(recipients)
	return recipients, nil
}

func (r *MemoryPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if payment.Status == "" {
		payment.Status = domain.StatusPending
	}
	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	r.mu.Lock()
	r.rows = append(r.rows, *payment)
	r.mu.Unlock()
	return nil
}
