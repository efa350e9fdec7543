package get_museum

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MuseumService/internal/api/handlers"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

const (
	msgMissingMuseumID = "отсутствует ID музея"
	msgNotFound        = "музей не найден"
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

// Handle GET /api/v1/museums/{museumId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	museumID := vars["museumId"]
	if museumID == "" {
		h.logger.Warn("GET /museums/{id} - Missing museum ID")
		handlers.RespondBadRequest(w, msgMissingMuseumID)
		return
	}

	museum, err := h.service.GetMuseum(r.Context(), museumID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMuseumNotFound):
			h.logger.Warn("GET /museums/{id} - Museum not found: museum_id=%s", museumID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /museums/{id} - Failed to get museum: museum_id=%s, error=%v", museumID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /museums/{id} - Museum retrieved successfully: museum_id=%s", museumID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(museum))
}
