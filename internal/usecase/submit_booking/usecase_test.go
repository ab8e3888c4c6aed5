package submit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	"github.com/m04kA/BRS-PricingService/internal/service/bookingform"
	catalogSvc "github.com/m04kA/BRS-PricingService/internal/service/catalog"
	sessionsSvc "github.com/m04kA/BRS-PricingService/internal/service/sessions"
	buildQuote "github.com/m04kA/BRS-PricingService/internal/usecase/build_quote"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct{}

func (fakeCatalog) BoatByID(boatID string) (*domain.BoatPricingProfile, error) {
	if boatID != "solar-450" {
		return nil, catalogSvc.ErrBoatNotFound
	}
	return &domain.BoatPricingProfile{ID: boatID, Capacity: 5}, nil
}

type fakeValidator struct {
	errs map[string]string
}

func (v *fakeValidator) ValidateAll(_ *bookingform.Input) map[string]string {
	if v.errs == nil {
		return map[string]string{}
	}
	return v.errs
}

type fakeQuoteBuilder struct {
	resp *buildQuote.Response
	err  error
}

func (b *fakeQuoteBuilder) Execute(_ context.Context, _ *buildQuote.Request) (*buildQuote.Response, error) {
	return b.resp, b.err
}

func okQuote() *buildQuote.Response {
	return &buildQuote.Response{
		Summary: domain.PricedBookingSummary{
			BoatID: "solar-450",
			Total:  decimal.NewFromInt(150),
		},
	}
}

func newEnv(t *testing.T, validator *fakeValidator, quotes *fakeQuoteBuilder) (*UseCase, *sessionsSvc.Store, string) {
	t.Helper()

	store := sessionsSvc.NewStore(time.Hour, nopLogger{})
	session, err := store.Create()
	require.NoError(t, err)

	session.Update(func(st *sessionsSvc.State) {
		st.Selection.BoatID = "solar-450"
	})

	uc := NewUseCase(store, fakeCatalog{}, validator, quotes, nopLogger{})
	return uc, store, session.ID
}

func TestUseCase_Execute_Success(t *testing.T) {
	uc, store, sessionID := newEnv(t,
		&fakeValidator{},
		&fakeQuoteBuilder{resp: okQuote()},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})

	require.NoError(t, err)
	assert.Empty(t, resp.FieldErrors)
	require.NotNil(t, resp.Quote)
	assert.True(t, resp.Quote.Summary.Total.Equal(decimal.NewFromInt(150)))

	// Успешная отправка завершает сессию
	_, err = store.Get(sessionID)
	assert.ErrorIs(t, err, sessionsSvc.ErrSessionNotFound)
}

func TestUseCase_Execute_ValidationFailure(t *testing.T) {
	uc, store, sessionID := newEnv(t,
		&fakeValidator{errs: map[string]string{domain.FieldEmail: "некорректный email"}},
		&fakeQuoteBuilder{resp: okQuote()},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})

	assert.ErrorIs(t, err, ErrValidationFailed)
	require.NotNil(t, resp)
	assert.Equal(t, "некорректный email", resp.FieldErrors[domain.FieldEmail])

	// Сессия жива: пользователь исправляет поля и повторяет отправку
	session, err := store.Get(sessionID)
	require.NoError(t, err)

	// Попытка отправки пометила все поля тронутыми
	session.Read(func(st *sessionsSvc.State) {
		for _, field := range domain.AllFields {
			assert.True(t, st.Fields.IsTouched(field), "field %s", field)
		}
	})
}

func TestUseCase_Execute_QuoteFailureBlocksBooking(t *testing.T) {
	uc, store, sessionID := newEnv(t,
		&fakeValidator{},
		&fakeQuoteBuilder{err: buildQuote.ErrOutOfSeason},
	)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID})

	assert.ErrorIs(t, err, ErrQuoteFailed)

	// Сессия не удаляется при неуспехе
	_, err = store.Get(sessionID)
	require.NoError(t, err)
}

func TestUseCase_Execute_SessionNotFound(t *testing.T) {
	uc, _, _ := newEnv(t, &fakeValidator{}, &fakeQuoteBuilder{resp: okQuote()})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "nope"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
