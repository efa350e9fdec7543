package chat_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MuseumService/internal/api/handlers"
	processMessage "github.com/m04kA/SMC-MuseumService/internal/usecase/process_message"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "запрос должен содержать текст сообщения или сабмит формы"
)

type Handler struct {
	useCase ProcessMessageUseCase
	logger  Logger
}

func NewHandler(useCase ProcessMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, processMessage.ErrInvalidInput):
			h.logger.Warn("POST /chat - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /chat - Failed to process message: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chat - Message processed: turn_type=%s, pending_form=%t",
		result.Turn.Type, result.PendingForm)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
