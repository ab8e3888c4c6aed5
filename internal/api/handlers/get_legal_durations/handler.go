package get_legal_durations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
	"github.com/m04kA/BRS-PricingService/internal/domain"
	durationsSvc "github.com/m04kA/BRS-PricingService/internal/service/durations"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidLicense = "некорректное значение requiresLicense"
	msgMissingLicense = "параметр requiresLicense обязателен"
	msgBoatNotFound   = "лодка не найдена"
	msgOutOfSeason    = "прокат не работает в выбранную дату"
)

type Handler struct {
	durations DurationsService
	logger    Logger
}

func NewHandler(durations DurationsService, logger Logger) *Handler {
	return &Handler{
		durations: durations,
		logger:    logger,
	}
}

// HandleForBoat GET /api/v1/boats/{boatId}/durations
// Query params: date (optional, YYYY-MM-DD; с датой возвращаются цены сезона)
func (h *Handler) HandleForBoat(w http.ResponseWriter, r *http.Request) {
	boatID := mux.Vars(r)["boatId"]

	dateStr := r.URL.Query().Get("date")

	var (
		items []durationsSvc.LegalDuration
		err   error
	)
	if dateStr == "" {
		items, err = h.durations.LegalForBoat(boatID)
	} else {
		var date time.Time
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /boats/{id}/durations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		items, err = h.durations.PricedForBoat(boatID, date)
	}

	if err != nil {
		switch {
		case errors.Is(err, durationsSvc.ErrBoatNotFound):
			h.logger.Warn("GET /boats/{id}/durations - Boat not found: boat_id=%s", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, domain.ErrOutOfOperatingSeason):
			h.logger.Info("GET /boats/{id}/durations - Out of season: boat_id=%s, date=%s", boatID, dateStr)
			handlers.RespondUnprocessable(w, msgOutOfSeason)

		default:
			h.logger.Error("GET /boats/{id}/durations - Failed: boat_id=%s, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /boats/{id}/durations - boat_id=%s, durations=%d", boatID, len(items))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(items))
}

// HandleForFilter GET /api/v1/durations
// Query params: requiresLicense (required, true/false)
func (h *Handler) HandleForFilter(w http.ResponseWriter, r *http.Request) {
	licenseStr := r.URL.Query().Get("requiresLicense")
	if licenseStr == "" {
		handlers.RespondBadRequest(w, msgMissingLicense)
		return
	}

	requiresLicense, err := strconv.ParseBool(licenseStr)
	if err != nil {
		h.logger.Warn("GET /durations - Invalid requiresLicense: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLicense)
		return
	}

	items := h.durations.LegalForLicenseFilter(requiresLicense)

	h.logger.Info("GET /durations - requiresLicense=%t, durations=%d", requiresLicense, len(items))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(items))
}
