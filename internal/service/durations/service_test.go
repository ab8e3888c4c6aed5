package durations

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	catalogSvc "github.com/m04kA/BRS-PricingService/internal/service/catalog"
)

type fakeCatalog struct {
	durations map[string][]domain.DurationKey
	prices    map[domain.DurationKey]decimal.Decimal
}

func (c *fakeCatalog) BoatByID(boatID string) (*domain.BoatPricingProfile, error) {
	if _, ok := c.durations[boatID]; !ok {
		return nil, catalogSvc.ErrBoatNotFound
	}
	return &domain.BoatPricingProfile{ID: boatID}, nil
}

func (c *fakeCatalog) AvailableDurations(boatID string) ([]domain.DurationKey, error) {
	keys, ok := c.durations[boatID]
	if !ok {
		return nil, catalogSvc.ErrBoatNotFound
	}
	return keys, nil
}

func (c *fakeCatalog) PriceFor(_ string, _ domain.Season, key domain.DurationKey) (decimal.Decimal, error) {
	price, ok := c.prices[key]
	if !ok {
		return decimal.Decimal{}, catalogSvc.ErrNoSuchPrice
	}
	return price, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(&fakeCatalog{
		durations: map[string][]domain.DurationKey{
			"katran-700": {domain.Duration2h, domain.Duration4h, domain.Duration8h},
		},
		prices: map[domain.DurationKey]decimal.Decimal{
			domain.Duration2h: decimal.NewFromInt(100),
			domain.Duration4h: decimal.NewFromInt(150),
			domain.Duration8h: decimal.NewFromInt(250),
		},
	}, nopLogger{})
}

func TestService_LegalForLicenseFilter(t *testing.T) {
	svc := newTestService()

	licensed := svc.LegalForLicenseFilter(true)
	require.Len(t, licensed, 3)
	assert.Equal(t, domain.Duration2h, licensed[0].Key)
	assert.Equal(t, "2 часа", licensed[0].Label)
	assert.Nil(t, licensed[0].Price, "цены нет, пока не выбрана лодка")

	unlicensed := svc.LegalForLicenseFilter(false)
	assert.Len(t, unlicensed, len(domain.AllDurations))
}

func TestService_LegalForBoat(t *testing.T) {
	svc := newTestService()

	result, err := svc.LegalForBoat("katran-700")
	require.NoError(t, err)
	require.Len(t, result, 3)
	for _, d := range result {
		assert.Nil(t, d.Price)
	}

	_, err = svc.LegalForBoat("ghost")
	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestService_PricedForBoat(t *testing.T) {
	svc := newTestService()
	date := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	result, err := svc.PricedForBoat("katran-700", date)
	require.NoError(t, err)
	require.Len(t, result, 3)

	require.NotNil(t, result[1].Price)
	assert.True(t, result[1].Price.Equal(decimal.NewFromInt(150)))
}

func TestService_PricedForBoat_OutOfSeason(t *testing.T) {
	svc := newTestService()
	date := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.PricedForBoat("katran-700", date)
	assert.ErrorIs(t, err, domain.ErrOutOfOperatingSeason)
}

func TestService_IsLegal(t *testing.T) {
	svc := newTestService()

	legal, err := svc.IsLegal("katran-700", domain.Duration4h)
	require.NoError(t, err)
	assert.True(t, legal)

	legal, err = svc.IsLegal("katran-700", domain.Duration3h)
	require.NoError(t, err)
	assert.False(t, legal)
}

func TestIsLegalForFilter(t *testing.T) {
	assert.True(t, IsLegalForFilter(true, domain.Duration8h))
	assert.False(t, IsLegalForFilter(true, domain.Duration1h))
	assert.True(t, IsLegalForFilter(false, domain.Duration1h))
}
