package get_quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	buildQuote "github.com/m04kA/BRS-PricingService/internal/usecase/build_quote"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *buildQuote.Response
	err  error

	gotSessionID string
}

func (uc *fakeUseCase) Execute(_ context.Context, req *buildQuote.Request) (*buildQuote.Response, error) {
	uc.gotSessionID = req.SessionID
	return uc.resp, uc.err
}

func doRequest(t *testing.T, uc *fakeUseCase, sessionID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sessions/{sessionId}/quote", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID+"/quote", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &buildQuote.Response{
			Summary: domain.PricedBookingSummary{
				BoatID:      "solar-450",
				Season:      domain.SeasonLow,
				DurationKey: domain.Duration4h,
				BasePrice:   decimal.NewFromInt(150),
				ExtrasTotal: decimal.NewFromInt(60),
				Subtotal:    decimal.NewFromInt(210),
				Promotion: &domain.AppliedPromotion{
					Kind:             domain.PromotionPercentage,
					Code:             "SUMMER10",
					Value:            decimal.NewFromInt(10),
					ComputedDiscount: decimal.NewFromInt(15),
				},
				Total: decimal.NewFromInt(195),
			},
			PeriodLabel: "апрель - июнь",
			Deposit:     decimal.NewFromInt(100),
		},
	}

	rec := doRequest(t, uc, "abc123")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", uc.gotSessionID)

	var body QuoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "solar-450", body.BoatID)
	assert.Equal(t, "low", body.Season)
	assert.Equal(t, "150", body.BasePrice)
	assert.Equal(t, "195", body.Total)
	require.NotNil(t, body.Promotion)
	assert.Equal(t, "percentage", body.Promotion.Kind)
	assert.Equal(t, "15", body.Promotion.ComputedDiscount)
}

func TestHandler_Handle_NoPromotionOmitted(t *testing.T) {
	uc := &fakeUseCase{
		resp: &buildQuote.Response{
			Summary: domain.PricedBookingSummary{
				BoatID:      "solar-450",
				Season:      domain.SeasonLow,
				DurationKey: domain.Duration4h,
				BasePrice:   decimal.NewFromInt(150),
				Subtotal:    decimal.NewFromInt(150),
				Total:       decimal.NewFromInt(150),
			},
		},
	}

	rec := doRequest(t, uc, "abc123")

	require.Equal(t, http.StatusOK, rec.Code)

	var body QuoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Nil(t, body.Promotion)
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"session not found", buildQuote.ErrSessionNotFound, http.StatusNotFound},
		{"selection incomplete", buildQuote.ErrSelectionIncomplete, http.StatusUnprocessableEntity},
		{"out of season", buildQuote.ErrOutOfSeason, http.StatusUnprocessableEntity},
		{"no such price", buildQuote.ErrNoSuchPrice, http.StatusUnprocessableEntity},
		{"illegal duration", buildQuote.ErrIllegalDuration, http.StatusUnprocessableEntity},
		{"internal", buildQuote.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, "abc123")
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
