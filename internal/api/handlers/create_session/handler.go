package create_session

import (
	"net/http"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Create()
	if err != nil {
		h.logger.Error("POST /sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session created: %s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, SessionResponse{SessionID: session.ID})
}
