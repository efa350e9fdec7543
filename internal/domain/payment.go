package domain

import "time"

// PaymentStatus represents the status of a payment intent
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentIntent represents a single payment attempt for a booking draft
// Создается один раз на бронирование и никогда не переиспользуется
type PaymentIntent struct {
	PaymentID    string
	MuseumID     string
	TicketTypeID string
	Quantity     int
	Amount       float64
	Currency     string
	Status       PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the intent has not been settled yet
func (p *PaymentIntent) IsPending() bool {
	return p.Status == PaymentStatusPending
}

// IsSettled returns true if the intent reached a terminal state
func (p *PaymentIntent) IsSettled() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusFailed
}
