package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment represents a scheduled payment row
type Payment struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
	Currency      string          `json:"currency" gorm:"type:varchar(3);not null"`
	ScheduledDate time.Time       `json:"scheduledDate" gorm:"type:date;not null"`
	Recipient     string          `json:"recipient" gorm:"type:varchar(255);not null"`
	Status        string          `json:"status" gorm:"type:varchar(50);not null;default:pending"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate assigns the identifier and default status
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	return nil
}

// Payment statuses. Status is free text; these are the values the system itself writes.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// PaymentRepository defines the contract for payment data access
type PaymentRepository interface {
	// FetchPage returns the ordered page selected by filter and the number of
	// rows matching filter regardless of pagination.
	FetchPage(ctx context.Context, filter FilterSet) ([]Payment, int64, error)
	// FetchDistinctRecipients returns every recipient ever recorded, ascending.
	FetchDistinctRecipients(ctx context.Context) ([]string, error)
	Create(ctx context.Context, payment *Payment) error
}
