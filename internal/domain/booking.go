package domain

import "time"

// Visitor contact details captured by the booking form
type Visitor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingDraft пользовательское намерение купить билеты до оплаты
// Создается подтверждением формы бронирования и ровно один раз
// потребляется пайплайном оплаты
type BookingDraft struct {
	MuseumID     string
	TicketTypeID string
	Quantity     int
	VisitDate    string // YYYY-MM-DD
	Visitor      Visitor
}

// TicketRecord is the terminal artifact of a completed booking
// Неизменяем после создания
type TicketRecord struct {
	BookingID    string
	MuseumID     string
	TicketTypeID string
	TicketName   string
	Quantity     int
	VisitDate    string
	Visitor      Visitor
	PaymentID    string
	PaymentStatus PaymentStatus
	TotalAmount  float64

	CreatedAt time.Time
}
