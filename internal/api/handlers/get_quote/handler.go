package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
	buildQuote "github.com/m04kA/BRS-PricingService/internal/usecase/build_quote"
)

const (
	msgSessionNotFound     = "сессия не найдена или истекла"
	msgSelectionIncomplete = "выбор не завершен: нужны лодка, дата и продолжительность"
	msgOutOfSeason         = "выбранная дата вне сезона работы проката"
	msgNoSuchPrice         = "для выбранной комбинации нет цены в каталоге"
	msgIllegalDuration     = "продолжительность недоступна для выбранной лодки"
)

type Handler struct {
	useCase BuildQuoteUseCase
	logger  Logger
}

func NewHandler(useCase BuildQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &buildQuote.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, buildQuote.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/quote - Session not found: %s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, buildQuote.ErrSelectionIncomplete):
			handlers.RespondUnprocessable(w, msgSelectionIncomplete)

		case errors.Is(err, buildQuote.ErrOutOfSeason):
			handlers.RespondUnprocessable(w, msgOutOfSeason)

		case errors.Is(err, buildQuote.ErrNoSuchPrice):
			h.logger.Error("GET /sessions/{id}/quote - No price for selection: session=%s", sessionID)
			handlers.RespondUnprocessable(w, msgNoSuchPrice)

		case errors.Is(err, buildQuote.ErrIllegalDuration):
			handlers.RespondUnprocessable(w, msgIllegalDuration)

		case errors.Is(err, buildQuote.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /sessions/{id}/quote - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
