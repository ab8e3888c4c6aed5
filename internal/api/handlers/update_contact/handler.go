package update_contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRS-PricingService/internal/api/handlers"
	"github.com/m04kA/BRS-PricingService/internal/domain"
	"github.com/m04kA/BRS-PricingService/internal/service/bookingform"
	sessionsSvc "github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgSessionNotFound = "сессия не найдена или истекла"
)

type Handler struct {
	store     SessionStore
	catalog   Catalog
	validator FormValidator
	logger    Logger
}

func NewHandler(store SessionStore, catalog Catalog, validator FormValidator, logger Logger) *Handler {
	return &Handler{
		store:     store,
		catalog:   catalog,
		validator: validator,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/contact
// Обновляет контактные поля, отмечает потерявшие фокус поля тронутыми
// и возвращает видимые ошибки (только для тронутых полей)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var body UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/contact - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	session, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessionsSvc.ErrSessionNotFound) {
			h.logger.Warn("PATCH /sessions/{id}/contact - Session not found: %s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("PATCH /sessions/{id}/contact - Failed: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	fieldErrors := make(map[string]string)

	session.Update(func(st *sessionsSvc.State) {
		if body.Name != nil {
			st.Contact.Name = *body.Name
		}
		if body.Email != nil {
			st.Contact.Email = *body.Email
		}
		if body.Phone != nil {
			st.Contact.Phone = *body.Phone
		}
		if body.StartTime != nil {
			st.Contact.StartTime = *body.StartTime
		}
		if body.PeopleCount != nil {
			st.Contact.PeopleCount = *body.PeopleCount
		}

		for _, field := range body.Touched {
			st.Fields.Touch(field)
		}

		input := &bookingform.Input{
			Contact:  st.Contact,
			Date:     st.Selection.Date,
			BoatID:   st.Selection.BoatID,
			Duration: st.Selection.DurationKey,
		}
		if st.Selection.BoatID != "" {
			if boat, err := h.catalog.BoatByID(st.Selection.BoatID); err == nil {
				input.Capacity = boat.Capacity
			}
		}

		for _, field := range domain.AllFields {
			if msg := h.validator.ShowFieldError(field, input, st.Fields); msg != "" {
				fieldErrors[field] = msg
			}
		}
	})

	handlers.RespondJSON(w, http.StatusOK, &ContactResponse{FieldErrors: fieldErrors})
}
