package query

import (
	"context"
	"fmt"

	"github.com/tair/payments-api/internal/payment/domain"
)

// ListRecipientsHandler handles the distinct recipients query
type ListRecipientsHandler struct {
	repo domain.PaymentRepository
}

// NewListRecipientsHandler creates a new list recipients handler
func NewListRecipientsHandler(repo domain.PaymentRepository) *ListRecipientsHandler {
	return &ListRecipientsHandler{repo: repo}
}

// Handle returns every known recipient in ascending order
func (h *ListRecipientsHandler) Handle(ctx context.Context) ([]string, error) {
	recipients, err := h.repo.FetchDistinctRecipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	if recipients == nil {
		recipients = []string{}
	}
	return recipients, nil
}
