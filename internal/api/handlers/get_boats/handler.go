package get_boats

import (
	"net/http"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/boats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	boats := h.catalog.Boats()

	h.logger.Info("GET /boats - %d boats returned", len(boats))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(boats))
}
