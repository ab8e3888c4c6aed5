package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRS-PricingService/internal/service/bookingform"
	sessionsSvc "github.com/m04kA/BRS-PricingService/internal/service/sessions"
	buildQuote "github.com/m04kA/BRS-PricingService/internal/usecase/build_quote"
)

// UseCase отправка формы бронирования: атомарно помечает все поля
// тронутыми, валидирует форму целиком и при успехе строит финальный расчет.
// Любая ошибка поля прерывает отправку; успешная отправка завершает сессию.
type UseCase struct {
	store     SessionStore
	catalog   Catalog
	validator FormValidator
	quotes    QuoteBuilder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SessionStore,
	catalog Catalog,
	validator FormValidator,
	quotes QuoteBuilder,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:     store,
		catalog:   catalog,
		validator: validator,
		quotes:    quotes,
		logger:    logger,
	}
}

// Execute выполняет отправку формы бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	session, err := uc.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessionsSvc.ErrSessionNotFound) {
			uc.logger.Warn("SubmitBooking: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: get session: %v", ErrInternal, err)
	}

	// 1. Помечаем все поля тронутыми и валидируем форму атомарно,
	// под мьютексом сессии
	var fieldErrors map[string]string
	session.Update(func(st *sessionsSvc.State) {
		st.Fields.TouchAll()

		input := &bookingform.Input{
			Contact:  st.Contact,
			Date:     st.Selection.Date,
			BoatID:   st.Selection.BoatID,
			Duration: st.Selection.DurationKey,
		}
		if st.Selection.BoatID != "" {
			if boat, err := uc.catalog.BoatByID(st.Selection.BoatID); err == nil {
				input.Capacity = boat.Capacity
			}
		}

		fieldErrors = uc.validator.ValidateAll(input)
	})

	if len(fieldErrors) > 0 {
		uc.logger.Info("SubmitBooking: session=%s rejected, %d invalid fields",
			req.SessionID, len(fieldErrors))
		return &Response{FieldErrors: fieldErrors}, ErrValidationFailed
	}

	// 2. Финальный расчет. Ошибка расчета блокирует бронирование.
	quote, err := uc.quotes.Execute(ctx, &buildQuote.Request{SessionID: req.SessionID})
	if err != nil {
		uc.logger.Warn("SubmitBooking: session=%s final quote failed: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrQuoteFailed, err)
	}

	// 3. Выбор одноразовый: после успешной отправки сессия завершается
	uc.store.Delete(req.SessionID)

	uc.logger.Info("SubmitBooking: session=%s submitted, total=%s",
		req.SessionID, quote.Summary.Total.String())
	return &Response{Quote: quote}, nil
}
