package chat_message

import (
	"github.com/m04kA/SMC-MuseumService/internal/domain"
	processMessage "github.com/m04kA/SMC-MuseumService/internal/usecase/process_message"
)

// FormSubmission структурированный сабмит формы бронирования
type FormSubmission struct {
	TicketTypeID string  `json:"ticketTypeId"`
	Quantity     int     `json:"quantity"`
	VisitDate    string  `json:"visitDate"` // "2026-01-15"
	Visitor      Visitor `json:"visitor"`
}

// Visitor контактные данные посетителя
type Visitor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Turn одна реплика транскрипта диалога
type Turn struct {
	Role    string        `json:"role"` // user | assistant
	Content string        `json:"content"`
	Type    string        `json:"type,omitempty"` // plain | booking-form | booking-confirmation
	Draft   *BookingDraft `json:"draft,omitempty"`
}

// BookingDraft детали бронирования, приложенные к подтверждению
type BookingDraft struct {
	MuseumID     string  `json:"museumId"`
	TicketTypeID string  `json:"ticketTypeId"`
	Quantity     int     `json:"quantity"`
	VisitDate    string  `json:"visitDate"`
	Visitor      Visitor `json:"visitor"`
}

// ChatMessageRequest HTTP request model
// История диалога путешествует с клиентом, сервер не хранит сессий
type ChatMessageRequest struct {
	Message     string          `json:"message,omitempty"`
	Form        *FormSubmission `json:"form,omitempty"`
	History     []Turn          `json:"history,omitempty"`
	MuseumID    *string         `json:"museumId,omitempty"`
	Language    string          `json:"language,omitempty"`
	PendingForm bool            `json:"pendingForm,omitempty"`
}

// IntentRefResponse ссылка на созданное платежное намерение
type IntentRefResponse struct {
	PaymentID string  `json:"paymentId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
}

// ChatMessageResponse HTTP response model
type ChatMessageResponse struct {
	Turn        Turn               `json:"turn"`
	PendingForm bool               `json:"pendingForm"`
	Intent      *IntentRefResponse `json:"intent,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ChatMessageRequest) ToUseCaseRequest() *processMessage.Request {
	req := &processMessage.Request{
		Message:     r.Message,
		History:     make([]domain.ConversationTurn, 0, len(r.History)),
		MuseumID:    r.MuseumID,
		Language:    r.Language,
		PendingForm: r.PendingForm,
	}

	if r.Form != nil {
		req.Form = &processMessage.FormSubmission{
			TicketTypeID: r.Form.TicketTypeID,
			Quantity:     r.Form.Quantity,
			VisitDate:    r.Form.VisitDate,
			Visitor: domain.Visitor{
				Name:  r.Form.Visitor.Name,
				Email: r.Form.Visitor.Email,
				Phone: r.Form.Visitor.Phone,
			},
		}
	}

	for _, turn := range r.History {
		req.History = append(req.History, domain.ConversationTurn{
			Role:    domain.TurnRole(turn.Role),
			Content: turn.Content,
			Type:    domain.TurnType(turn.Type),
		})
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *processMessage.Response) *ChatMessageResponse {
	out := &ChatMessageResponse{
		Turn: Turn{
			Role:    string(resp.Turn.Role),
			Content: resp.Turn.Content,
			Type:    string(resp.Turn.Type),
		},
		PendingForm: resp.PendingForm,
	}

	if resp.Turn.Draft != nil {
		out.Turn.Draft = &BookingDraft{
			MuseumID:     resp.Turn.Draft.MuseumID,
			TicketTypeID: resp.Turn.Draft.TicketTypeID,
			Quantity:     resp.Turn.Draft.Quantity,
			VisitDate:    resp.Turn.Draft.VisitDate,
			Visitor: Visitor{
				Name:  resp.Turn.Draft.Visitor.Name,
				Email: resp.Turn.Draft.Visitor.Email,
				Phone: resp.Turn.Draft.Visitor.Phone,
			},
		}
	}

	if resp.Intent != nil {
		out.Intent = &IntentRefResponse{
			PaymentID: resp.Intent.PaymentID,
			Amount:    resp.Intent.Amount,
			Currency:  resp.Intent.Currency,
			Status:    resp.Intent.Status,
		}
	}

	return out
}
