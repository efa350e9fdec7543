package settle_payment

import (
	"time"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	settlePayment "github.com/m04kA/SMC-MuseumService/internal/usecase/settle_payment"
)

// SettlePaymentRequest HTTP request model
// Детали бронирования путешествуют с клиентом от формы до settlement
type SettlePaymentRequest struct {
	VisitDate string  `json:"visitDate"` // "2026-01-15"
	Visitor   Visitor `json:"visitor"`
}

// Visitor контактные данные посетителя
type Visitor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// TicketRecordResponse финальная запись о билете
type TicketRecordResponse struct {
	BookingID     string  `json:"bookingId"`
	MuseumID      string  `json:"museumId"`
	TicketTypeID  string  `json:"ticketTypeId"`
	TicketName    string  `json:"ticketName"`
	Quantity      int     `json:"quantity"`
	VisitDate     string  `json:"visitDate"`
	Visitor       Visitor `json:"visitor"`
	PaymentID     string  `json:"paymentId"`
	PaymentStatus string  `json:"paymentStatus"`
	TotalAmount   float64 `json:"totalAmount"`
	CreatedAt     string  `json:"createdAt"`
}

// SettlePaymentResponse HTTP response model
type SettlePaymentResponse struct {
	PaymentID string                `json:"paymentId"`
	Status    string                `json:"status"`
	Record    *TicketRecordResponse `json:"record,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SettlePaymentRequest) ToUseCaseRequest(paymentID string) *settlePayment.Request {
	return &settlePayment.Request{
		PaymentID: paymentID,
		VisitDate: r.VisitDate,
		Visitor: domain.Visitor{
			Name:  r.Visitor.Name,
			Email: r.Visitor.Email,
			Phone: r.Visitor.Phone,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *settlePayment.Response) *SettlePaymentResponse {
	out := &SettlePaymentResponse{
		PaymentID: resp.PaymentID,
		Status:    resp.Status,
	}

	if resp.Record != nil {
		out.Record = &TicketRecordResponse{
			BookingID:     resp.Record.BookingID,
			MuseumID:      resp.Record.MuseumID,
			TicketTypeID:  resp.Record.TicketTypeID,
			TicketName:    resp.Record.TicketName,
			Quantity:      resp.Record.Quantity,
			VisitDate:     resp.Record.VisitDate,
			Visitor: Visitor{
				Name:  resp.Record.Visitor.Name,
				Email: resp.Record.Visitor.Email,
				Phone: resp.Record.Visitor.Phone,
			},
			PaymentID:     resp.Record.PaymentID,
			PaymentStatus: resp.Record.PaymentStatus,
			TotalAmount:   resp.Record.TotalAmount,
			CreatedAt:     resp.Record.CreatedAt.Format(time.RFC3339),
		}
	}

	return out
}
