package update_selection

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
	updateSelection "github.com/m04kA/BRS-PricingService/internal/usecase/update_selection"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionNotFound = "сессия не найдена или истекла"
	msgBoatNotFound    = "лодка не найдена"
	msgPackNotFound    = "пак недоступен для выбранной лодки"
	msgExtraNotFound   = "опция недоступна для выбранной лодки"
)

type Handler struct {
	useCase UpdateSelectionUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var body UpdateSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/selection - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := ToUseCaseRequest(sessionID, &body)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/selection - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSelection.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/selection - Session not found: %s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, updateSelection.ErrBoatNotFound):
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, updateSelection.ErrPackNotFound):
			handlers.RespondBadRequest(w, msgPackNotFound)

		case errors.Is(err, updateSelection.ErrExtraNotFound):
			handlers.RespondBadRequest(w, msgExtraNotFound)

		case errors.Is(err, updateSelection.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /sessions/{id}/selection - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
