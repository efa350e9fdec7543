package download_ticket

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

// Handle GET /api/v1/tickets/{bookingId}/receipt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /tickets/{id}/receipt - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	data, err := h.service.RenderReceipt(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrRecordNotFound):
			h.logger.Warn("GET /tickets/{id}/receipt - Ticket not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /tickets/{id}/receipt - Failed to render receipt: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "ticket-"+bookingID+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		// Заголовки уже отправлены, остается только залогировать
		h.logger.Error("GET /tickets/{id}/receipt - Failed to write response: booking_id=%s, error=%v",
			bookingID, err)
		return
	}

	h.logger.Info("GET /tickets/{id}/receipt - Receipt downloaded: booking_id=%s, size=%d bytes",
		bookingID, len(data))
}
