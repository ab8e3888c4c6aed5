package clear_promocode

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
	sessionsSvc "github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

const msgSessionNotFound = "сессия не найдена или истекла"

type Handler struct {
	store  SessionStore
	logger Logger
}

func NewHandler(store SessionStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}/promocode
// Снимает примененный код; идемпотентен, если кода нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessionsSvc.ErrSessionNotFound) {
			h.logger.Warn("DELETE /sessions/{id}/promocode - Session not found: %s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("DELETE /sessions/{id}/promocode - Failed: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	session.ClearPromotion()

	w.WriteHeader(http.StatusNoContent)
}
