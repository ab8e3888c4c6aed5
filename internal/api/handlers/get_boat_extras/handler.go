package get_boat_extras

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
	catalogSvc "github.com/m04kA/BRS-PricingService/internal/service/catalog"
)

const (
	msgMissingBoatID = "ID лодки обязателен"
	msgBoatNotFound  = "лодка не найдена"
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

// Handle GET /api/v1/boats/{boatId}/extras
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	boatID := mux.Vars(r)["boatId"]
	if boatID == "" {
		handlers.RespondBadRequest(w, msgMissingBoatID)
		return
	}

	extras, err := h.catalog.ExtrasFor(boatID)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrBoatNotFound) {
			h.logger.Warn("GET /boats/{id}/extras - Boat not found: boat_id=%s", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)
			return
		}
		h.logger.Error("GET /boats/{id}/extras - Failed to get extras: boat_id=%s, error=%v", boatID, err)
		handlers.RespondInternalError(w)
		return
	}

	packs, err := h.catalog.PacksFor(boatID)
	if err != nil {
		h.logger.Error("GET /boats/{id}/extras - Failed to get packs: boat_id=%s, error=%v", boatID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /boats/{id}/extras - boat_id=%s, extras=%d, packs=%d", boatID, len(extras), len(packs))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(boatID, extras, packs))
}
