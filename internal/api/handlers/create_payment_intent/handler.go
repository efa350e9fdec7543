package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MuseumService/internal/api/handlers"
	createPaymentIntent "github.com/m04kA/SMC-MuseumService/internal/usecase/create_payment_intent"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры платежа"
	msgMuseumNotFound     = "музей не найден"
	msgTicketTypeNotFound = "тип билета не найден"
)

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/intents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/intents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createPaymentIntent.ErrInvalidInput):
			h.logger.Warn("POST /payments/intents - Invalid input: museum_id=%s, quantity=%d, error=%v",
				req.MuseumID, req.Quantity, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createPaymentIntent.ErrMuseumNotFound):
			h.logger.Warn("POST /payments/intents - Museum not found: museum_id=%s", req.MuseumID)
			handlers.RespondNotFound(w, msgMuseumNotFound)

		case errors.Is(err, createPaymentIntent.ErrTicketTypeNotFound):
			h.logger.Warn("POST /payments/intents - Ticket type not found: museum_id=%s, ticket_type=%s",
				req.MuseumID, req.TicketTypeID)
			handlers.RespondNotFound(w, msgTicketTypeNotFound)

		default:
			h.logger.Error("POST /payments/intents - Failed to create intent: museum_id=%s, error=%v",
				req.MuseumID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/intents - Intent created successfully: payment_id=%s, amount=%.2f",
		result.PaymentID, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
