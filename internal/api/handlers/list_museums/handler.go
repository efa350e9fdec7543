package list_museums

import (
	"net/http"

	"github.com/m04kA/SMC-MuseumService/internal/api/handlers"
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

// Handle GET /api/v1/museums
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	museums, err := h.service.ListMuseums(r.Context())
	if err != nil {
		h.logger.Error("GET /museums - Failed to list museums: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /museums - Museums listed successfully: total=%d", len(museums))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(museums))
}
