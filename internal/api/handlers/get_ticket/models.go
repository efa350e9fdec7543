package get_ticket

import (
	"time"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// TicketRecordResponse HTTP response model
type TicketRecordResponse struct {
	BookingID     string         `json:"bookingId"`
	MuseumID      string         `json:"museumId"`
	TicketTypeID  string         `json:"ticketTypeId"`
	TicketName    string         `json:"ticketName"`
	Quantity      int            `json:"quantity"`
	VisitDate     string         `json:"visitDate"`
	Visitor       domain.Visitor `json:"visitor"`
	PaymentID     string         `json:"paymentId"`
	PaymentStatus string         `json:"paymentStatus"`
	TotalAmount   float64        `json:"totalAmount"`
	CreatedAt     string         `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(record *domain.TicketRecord) *TicketRecordResponse {
	return &TicketRecordResponse{
		BookingID:     record.BookingID,
		MuseumID:      record.MuseumID,
		TicketTypeID:  record.TicketTypeID,
		TicketName:    record.TicketName,
		Quantity:      record.Quantity,
		VisitDate:     record.VisitDate,
		Visitor:       record.Visitor,
		PaymentID:     record.PaymentID,
		PaymentStatus: string(record.PaymentStatus),
		TotalAmount:   record.TotalAmount,
		CreatedAt:     record.CreatedAt.Format(time.RFC3339),
	}
}
