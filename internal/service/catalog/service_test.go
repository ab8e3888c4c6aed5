package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

type fakeRepo struct {
	boats []*domain.BoatPricingProfile
	packs []*domain.ExtraPack
}

func (r *fakeRepo) ListBoats(_ context.Context) ([]*domain.BoatPricingProfile, error) {
	return r.boats, nil
}

func (r *fakeRepo) ListPacks(_ context.Context) ([]*domain.ExtraPack, error) {
	return r.packs, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func prices(keys []domain.DurationKey, base int64) map[domain.DurationKey]decimal.Decimal {
	out := make(map[domain.DurationKey]decimal.Decimal, len(keys))
	for i, key := range keys {
		out[key] = decimal.NewFromInt(base + int64(i)*50)
	}
	return out
}

func validBoat(id string, requiresLicense bool) *domain.BoatPricingProfile {
	keys := domain.DurationsForLicense(requiresLicense)
	return &domain.BoatPricingProfile{
		ID:              id,
		Name:            "Solar 450",
		RequiresLicense: requiresLicense,
		Capacity:        5,
		Deposit:         decimal.NewFromInt(100),
		Pricing: map[domain.Season]domain.SeasonPricing{
			domain.SeasonLow:  {PeriodLabel: "апрель - июнь", Prices: prices(keys, 100)},
			domain.SeasonMid:  {PeriodLabel: "июль", Prices: prices(keys, 150)},
			domain.SeasonHigh: {PeriodLabel: "август", Prices: prices(keys, 200)},
		},
		Extras: []domain.ExtraItem{
			{Name: "скипер", Price: decimal.NewFromInt(50)},
			{Name: "тент", Price: decimal.NewFromInt(20)},
		},
	}
}

func loadService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	svc := NewService(repo, nopLogger{})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestService_Load_ValidCatalog(t *testing.T) {
	svc := loadService(t, &fakeRepo{
		boats: []*domain.BoatPricingProfile{validBoat("solar-450", false), validBoat("katran-700", true)},
	})

	assert.Len(t, svc.Boats(), 2)
}

func TestService_Load_MissingSeasonTable(t *testing.T) {
	boat := validBoat("solar-450", false)
	delete(boat.Pricing, domain.SeasonHigh)

	svc := NewService(&fakeRepo{boats: []*domain.BoatPricingProfile{boat}}, nopLogger{})
	err := svc.Load(context.Background())

	assert.ErrorIs(t, err, ErrInconsistentSeasons)
}

func TestService_Load_SeasonKeySetMismatch(t *testing.T) {
	boat := validBoat("solar-450", false)
	high := boat.Pricing[domain.SeasonHigh]
	delete(high.Prices, domain.Duration3h)
	high.Prices[domain.DurationKey("5h")] = decimal.NewFromInt(500)
	boat.Pricing[domain.SeasonHigh] = high

	svc := NewService(&fakeRepo{boats: []*domain.BoatPricingProfile{boat}}, nopLogger{})
	err := svc.Load(context.Background())

	assert.ErrorIs(t, err, ErrInconsistentSeasons)
}

func TestService_Load_IllegalDurationSetForLicense(t *testing.T) {
	// Лицензионная лодка с полным набором продолжительностей - ошибка данных
	boat := validBoat("katran-700", true)
	for _, season := range domain.AllSeasons {
		boat.Pricing[season] = domain.SeasonPricing{
			PeriodLabel: boat.Pricing[season].PeriodLabel,
			Prices:      prices(domain.AllDurations, 100),
		}
	}

	svc := NewService(&fakeRepo{boats: []*domain.BoatPricingProfile{boat}}, nopLogger{})
	err := svc.Load(context.Background())

	assert.ErrorIs(t, err, ErrIllegalDurationSet)
}

func TestService_Load_NegativePackSavings(t *testing.T) {
	pack := &domain.ExtraPack{
		ID:          "comfort",
		ExtraNames:  []string{"скипер", "тент"},
		BundlePrice: decimal.NewFromInt(100), // дороже суммы опций (70)
	}

	svc := NewService(&fakeRepo{
		boats: []*domain.BoatPricingProfile{validBoat("solar-450", false)},
		packs: []*domain.ExtraPack{pack},
	}, nopLogger{})
	err := svc.Load(context.Background())

	assert.ErrorIs(t, err, ErrNegativePackSavings)
}

func TestService_PriceFor(t *testing.T) {
	svc := loadService(t, &fakeRepo{
		boats: []*domain.BoatPricingProfile{validBoat("solar-450", false)},
	})

	price, err := svc.PriceFor("solar-450", domain.SeasonHigh, domain.Duration1h)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(200)))

	_, err = svc.PriceFor("ghost", domain.SeasonLow, domain.Duration1h)
	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestService_AvailableDurations_Ordered(t *testing.T) {
	svc := loadService(t, &fakeRepo{
		boats: []*domain.BoatPricingProfile{validBoat("katran-700", true)},
	})

	keys, err := svc.AvailableDurations("katran-700")
	require.NoError(t, err)
	assert.Equal(t, []domain.DurationKey{domain.Duration2h, domain.Duration4h, domain.Duration8h}, keys)
}

func TestService_PacksFor_ComputesOriginalPricePerBoat(t *testing.T) {
	pack := &domain.ExtraPack{
		ID:          "comfort",
		ExtraNames:  []string{"скипер", "тент"},
		BundlePrice: decimal.NewFromInt(60),
	}

	svc := loadService(t, &fakeRepo{
		boats: []*domain.BoatPricingProfile{validBoat("solar-450", false)},
		packs: []*domain.ExtraPack{pack},
	})

	packs, err := svc.PacksFor("solar-450")
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.True(t, packs[0].OriginalPrice.Equal(decimal.NewFromInt(70)))
	assert.True(t, packs[0].Savings().Equal(decimal.NewFromInt(10)))
}

func TestService_PacksFor_SkipsInapplicablePacks(t *testing.T) {
	pack := &domain.ExtraPack{
		ID:          "bbq",
		ExtraNames:  []string{"гриль"},
		BundlePrice: decimal.NewFromInt(30),
	}

	svc := loadService(t, &fakeRepo{
		boats: []*domain.BoatPricingProfile{validBoat("solar-450", false)},
		packs: []*domain.ExtraPack{pack},
	})

	packs, err := svc.PacksFor("solar-450")
	require.NoError(t, err)
	assert.Empty(t, packs)

	_, err = svc.PackForBoat("solar-450", "bbq")
	assert.ErrorIs(t, err, ErrPackNotFound)
}
