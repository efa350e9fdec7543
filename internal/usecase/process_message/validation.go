package process_message

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// Сообщения формы бронирования всегда на английском,
// как и rule-based ответы ассистента
const (
	formMsgNoMuseum      = "Please select a museum first before booking tickets."
	formMsgNoTicketType  = "Please select a ticket type to continue with your booking."
	formMsgBadTicketType = "Selected ticket type is not available. Please pick one of the listed ticket types."
	formMsgBadDate       = "Please choose a valid visit date in YYYY-MM-DD format."
	formMsgNoVisitor     = "Please provide your name, email and phone number to continue."
)

func formMsgBadQuantity() string {
	return fmt.Sprintf("Quantity must be between %d and %d tickets.",
		domain.MinTicketsPerBooking, domain.MaxTicketsPerBooking)
}

// validateForm проверяет сабмит формы против выбранного музея
// Возвращает текст проблемы для реплики ассистента; пустая строка - форма валидна
func validateForm(form *FormSubmission, museum *domain.Museum) string {
	if strings.TrimSpace(form.TicketTypeID) == "" {
		return formMsgNoTicketType
	}

	if _, ok := museum.TicketByID(form.TicketTypeID); !ok {
		return formMsgBadTicketType
	}

	if form.Quantity < domain.MinTicketsPerBooking || form.Quantity > domain.MaxTicketsPerBooking {
		return formMsgBadQuantity()
	}

	if _, err := time.Parse(domain.DateFormat, form.VisitDate); err != nil {
		return formMsgBadDate
	}

	if strings.TrimSpace(form.Visitor.Name) == "" ||
		strings.TrimSpace(form.Visitor.Email) == "" ||
		strings.TrimSpace(form.Visitor.Phone) == "" {
		return formMsgNoVisitor
	}

	return ""
}
