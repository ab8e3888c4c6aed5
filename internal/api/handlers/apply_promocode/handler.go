package apply_promocode

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
	applyPromocode "github.com/m04kA/BRS-PricingService/internal/usecase/apply_promocode"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgSessionNotFound  = "сессия не найдена или истекла"
	msgInvalidCode      = "промокод недействителен"
	msgValidationBusy   = "валидация этого кода уже выполняется"
	msgResultSuperseded = "код заменен более новым"
)

type Handler struct {
	useCase ApplyPromocodeUseCase
	logger  Logger
}

func NewHandler(useCase ApplyPromocodeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/promocode
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var body ApplyPromocodeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /sessions/{id}/promocode - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &applyPromocode.Request{
		SessionID: sessionID,
		Code:      body.Code,
	})
	if err != nil {
		switch {
		case errors.Is(err, applyPromocode.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/promocode - Session not found: %s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, applyPromocode.ErrInvalidCode):
			h.logger.Info("POST /sessions/{id}/promocode - Invalid code: session=%s", sessionID)
			handlers.RespondUnprocessable(w, msgInvalidCode)

		case errors.Is(err, applyPromocode.ErrValidationInFlight):
			handlers.RespondConflict(w, msgValidationBusy)

		case errors.Is(err, applyPromocode.ErrSuperseded):
			handlers.RespondConflict(w, msgResultSuperseded)

		case errors.Is(err, applyPromocode.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /sessions/{id}/promocode - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
