package import_museums

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

// Handle POST /api/v1/museums/import
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ImportSeed(r.Context())
	if err != nil {
		h.logger.Error("POST /museums/import - Failed to import seed data: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /museums/import - Seed import complete: imported=%d, failed=%d",
		result.Imported, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
