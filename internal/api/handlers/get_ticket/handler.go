package get_ticket

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MuseumService/internal/api/handlers"
	"github.com/m04kA/SMC-MuseumService/internal/service/tickets"
)

const (
	msgMissingBookingID = "отсутствует ID бронирования"
	msgNotFound         = "билет не найден"
)

type Handler struct {
	service TicketService
	logger  Logger
}

func NewHandler(service TicketService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tickets/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /tickets/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	record, err := h.service.GetRecord(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrRecordNotFound):
			h.logger.Warn("GET /tickets/{id} - Ticket not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /tickets/{id} - Failed to get ticket: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tickets/{id} - Ticket retrieved successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(record))
}
