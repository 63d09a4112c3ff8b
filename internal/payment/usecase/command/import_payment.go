package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/payments-api/internal/payment/domain"
	"github.com/tair/payments-api/pkg/apperror"
	"github.com/tair/payments-api/pkg/validation"
)

// maxAmount is the first value that does not fit numeric(10,2)
var maxAmount = decimal.New(1, 8)

// ImportPaymentCommand represents one externally scheduled payment
type ImportPaymentCommand struct {
	Recipient     string `json:"recipient" validate:"required,max=255"`
	Amount        string `json:"amount" validate:"required"`
	Currency      string `json:"currency" validate:"required,len=3,alpha"`
	ScheduledDate string `json:"scheduledDate" validate:"required"`
	Status        string `json:"status" validate:"omitempty,max=50"`
}

// ImportPaymentHandler handles import payment command
type ImportPaymentHandler struct {
	repo domain.PaymentRepository
}

// NewImportPaymentHandler creates a new import payment handler
func NewImportPaymentHandler(repo domain.PaymentRepository) *ImportPaymentHandler {
	return &ImportPaymentHandler{repo: repo}
}

// Handle validates the command and stores a new payment
func (h *ImportPaymentHandler) Handle(ctx context.Context, cmd ImportPaymentCommand) (*domain.Payment, error) {
	cmd.Recipient = strings.TrimSpace(cmd.Recipient)
	cmd.Currency = strings.TrimSpace(cmd.Currency)
	cmd.Status = strings.TrimSpace(cmd.Status)

	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(cmd.Amount)
	if err != nil {
		return nil, apperror.Validation("amount %q is not a decimal number", cmd.Amount)
	}
	if amount.Abs().Round(2).GreaterThanOrEqual(maxAmount) {
		return nil, apperror.Validation("amount %s is out of range", cmd.Amount)
	}

	scheduled, err := domain.ParseDate(cmd.ScheduledDate)
	if err != nil {
		return nil, apperror.Validation("scheduledDate %q is not a valid date", cmd.ScheduledDate)
	}

	status := cmd.Status
	if status == "" {
		status = domain.StatusPending
	}

	payment := &domain.Payment{
		Amount:        amount.Round(2),
		Currency:      cmd.Currency,
		ScheduledDate: scheduled,
		Recipient:     cmd.Recipient,
		Status:        status,
	}

	if err := h.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to import payment: %w", err)
	}

	return payment, nil
}
