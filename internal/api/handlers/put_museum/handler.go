package put_museum

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MuseumService/internal/api/handlers"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingMuseumID    = "отсутствует ID музея"
	msgInvalidMuseum      = "некорректная запись музея"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/museums/{museumId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	museumID := vars["museumId"]
	if museumID == "" {
		h.logger.Warn("PUT /museums/{id} - Missing museum ID")
		handlers.RespondBadRequest(w, msgMissingMuseumID)
		return
	}

	var req PutMuseumRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /museums/{id} - Invalid request body: museum_id=%s, error=%v", museumID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.UpsertMuseum(r.Context(), req.ToDomain(museumID))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidMuseum):
			h.logger.Warn("PUT /museums/{id} - Invalid museum record: museum_id=%s, error=%v", museumID, err)
			handlers.RespondBadRequest(w, msgInvalidMuseum)

		default:
			h.logger.Error("PUT /museums/{id} - Failed to upsert museum: museum_id=%s, error=%v", museumID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /museums/{id} - Museum saved successfully: museum_id=%s", saved.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(saved))
}
