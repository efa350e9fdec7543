package settle_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MuseumService/internal/api/handlers"
	settlePayment "github.com/m04kA/SMC-MuseumService/internal/usecase/settle_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPaymentID   = "отсутствует ID платежа"
	msgInvalidInput       = "некорректные параметры запроса"
	msgIntentNotFound     = "платежное намерение не найдено"
	msgPaymentFailed      = "платеж не прошел, попробуйте еще раз"
)

type Handler struct {
	useCase SettlePaymentUseCase
	logger  Logger
}

func NewHandler(useCase SettlePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/{paymentId}/settle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID := vars["paymentId"]
	if paymentID == "" {
		h.logger.Warn("POST /payments/{id}/settle - Missing payment ID")
		handlers.RespondBadRequest(w, msgMissingPaymentID)
		return
	}

	var req SettlePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/{id}/settle - Invalid request body: payment_id=%s, error=%v", paymentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(paymentID))
	if err != nil {
		switch {
		case errors.Is(err, settlePayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/{id}/settle - Invalid input: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, settlePayment.ErrIntentNotFound):
			h.logger.Warn("POST /payments/{id}/settle - Intent not found: payment_id=%s", paymentID)
			handlers.RespondNotFound(w, msgIntentNotFound)

		case errors.Is(err, settlePayment.ErrPaymentFailed):
			// Намерение сохраняется, клиент может повторить settlement
			h.logger.Warn("POST /payments/{id}/settle - Payment failed: payment_id=%s", paymentID)
			handlers.RespondError(w, http.StatusConflict, msgPaymentFailed)

		default:
			h.logger.Error("POST /payments/{id}/settle - Failed to settle payment: payment_id=%s, error=%v",
				paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/{id}/settle - Payment settled successfully: payment_id=%s, booking_id=%s",
		paymentID, result.Record.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
