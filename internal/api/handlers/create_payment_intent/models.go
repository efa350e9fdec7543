package create_payment_intent

import (
	createPaymentIntent "github.com/m04kA/SMC-MuseumService/internal/usecase/create_payment_intent"
)

// CreatePaymentIntentRequest HTTP request model
type CreatePaymentIntentRequest struct {
	MuseumID     string `json:"museumId"`
	TicketTypeID string `json:"ticketTypeId"`
	Quantity     int    `json:"quantity"`
}

// PaymentIntentResponse HTTP response model
type PaymentIntentResponse struct {
	PaymentID  string  `json:"paymentId"`
	MuseumID   string  `json:"museumId"`
	TicketName string  `json:"ticketName"`
	Quantity   int     `json:"quantity"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePaymentIntentRequest) ToUseCaseRequest() *createPaymentIntent.Request {
	return &createPaymentIntent.Request{
		MuseumID:     r.MuseumID,
		TicketTypeID: r.TicketTypeID,
		Quantity:     r.Quantity,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPaymentIntent.Response) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		PaymentID:  resp.PaymentID,
		MuseumID:   resp.MuseumID,
		TicketName: resp.TicketName,
		Quantity:   resp.Quantity,
		Amount:     resp.Amount,
		Currency:   resp.Currency,
		Status:     resp.Status,
	}
}
