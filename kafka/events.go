package kafka

import "time"

// UserEvent describes a user lifecycle change
type UserEvent struct {
	EventID   string    `json:"eventId"`
	EventType string    `json:"eventType"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	Timestamp time.Time `json:"timestamp"`
}

// PaymentScheduledEvent asks the payments API to record a scheduled payment
type PaymentScheduledEvent struct {
	EventID       string    `json:"eventId"`
	EventType     string    `json:"eventType"`
	Recipient     string    `json:"recipient"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	ScheduledDate string    `json:"scheduledDate"`
	Status        string    `json:"status,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeUserCreated      = "user.created"
	EventTypeUserUpdated      = "user.updated"
	EventTypeUserDeactivated  = "user.deactivated"
	EventTypePaymentScheduled = "payment.scheduled"
)

// Kafka topics
const (
	TopicUserEvents       = "user-events"
	TopicPaymentScheduled = "payment-scheduled"
)

// Message headers
const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)
