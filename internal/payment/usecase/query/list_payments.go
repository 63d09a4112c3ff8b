package query

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/payments-api/internal/payment/domain"
)

// ListPaymentsQuery represents the query to list payments
type ListPaymentsQuery struct {
	Filter domain.FilterSet
}

// PaymentItem is the public shape of a payment
type PaymentItem struct {
	ID            string    `json:"id"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	ScheduledDate string    `json:"scheduledDate"`
	Recipient     string    `json:"recipient"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ResultPage is one page of payments together with the size of the full match set
type ResultPage struct {
	Data   []PaymentItem `json:"data"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Count  int           `json:"count"`
}

// ToItem projects a stored payment onto its public fields
func ToItem(p domain.Payment) PaymentItem {
	return PaymentItem{
		ID:            p.ID.String(),
		Amount:        p.Amount.StringFixed(2),
		Currency:      p.Currency,
		ScheduledDate: p.ScheduledDate.Format(domain.DateLayout),
		Recipient:     p.Recipient,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ListPaymentsHandler handles list payments query
type ListPaymentsHandler struct {
	repo domain.PaymentRepository
}

// NewListPaymentsHandler creates a new list payments handler
func NewListPaymentsHandler(repo domain.PaymentRepository) *ListPaymentsHandler {
	return &ListPaymentsHandler{repo: repo}
}

// Handle executes the list payments query
func (h *ListPaymentsHandler) Handle(ctx context.Context, query ListPaymentsQuery) (*ResultPage, error) {
	limit, offset := domain.ResolvePagination(query.Filter)

	payments, total, err := h.repo.FetchPage(ctx, query.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	items := make([]PaymentItem, 0, len(payments))
	for _, p := range payments {
		items = append(items, ToItem(p))
	}

	return &ResultPage{
		Data:   items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Count:  len(items),
	}, nil
}
