package create_payment_intent

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.MuseumID) == "" {
		return fmt.Errorf("%w: museumID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TicketTypeID) == "" {
		return fmt.Errorf("%w: ticketTypeID is required", ErrInvalidInput)
	}

	if req.Quantity < domain.MinTicketsPerBooking || req.Quantity > domain.MaxTicketsPerBooking {
		return fmt.Errorf("%w: quantity must be between %d and %d",
			ErrInvalidInput, domain.MinTicketsPerBooking, domain.MaxTicketsPerBooking)
	}

	return nil
}
