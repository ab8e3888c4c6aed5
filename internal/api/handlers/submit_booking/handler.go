package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
	submitBooking "github.com/m04kA/BRS-PricingService/internal/usecase/submit_booking"
)

const (
	msgSessionNotFound  = "сессия не найдена или истекла"
	msgValidationFailed = "форма заполнена с ошибками"
	msgQuoteFailed      = "итоговый расчет не построился, бронирование невозможно"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: %s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrValidationFailed):
			h.logger.Info("POST /sessions/{id}/submit - Validation failed: session=%s, fields=%d",
				sessionID, len(result.FieldErrors))
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, &ValidationErrorsResponse{
				Message:     msgValidationFailed,
				FieldErrors: result.FieldErrors,
			})

		case errors.Is(err, submitBooking.ErrQuoteFailed):
			h.logger.Warn("POST /sessions/{id}/submit - Quote failed: session=%s, error=%v", sessionID, err)
			handlers.RespondUnprocessable(w, msgQuoteFailed)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Booking submitted: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
