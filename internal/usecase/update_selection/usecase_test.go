package update_selection

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	catalogSvc "github.com/m04kA/BRS-PricingService/internal/service/catalog"
	sessionsSvc "github.com/m04kA/BRS-PricingService/internal/service/sessions"
	"github.com/m04kA/BRS-PricingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct {
	boats map[string]*domain.BoatPricingProfile
	packs map[string]*domain.ExtraPack // packID -> pack
}

func (c *fakeCatalog) BoatByID(boatID string) (*domain.BoatPricingProfile, error) {
	boat, ok := c.boats[boatID]
	if !ok {
		return nil, catalogSvc.ErrBoatNotFound
	}
	return boat, nil
}

func (c *fakeCatalog) AvailableDurations(boatID string) ([]domain.DurationKey, error) {
	boat, ok := c.boats[boatID]
	if !ok {
		return nil, catalogSvc.ErrBoatNotFound
	}
	return domain.DurationsForLicense(boat.RequiresLicense), nil
}

func (c *fakeCatalog) PackForBoat(boatID, packID string) (*domain.ExtraPack, error) {
	boat, ok := c.boats[boatID]
	if !ok {
		return nil, catalogSvc.ErrBoatNotFound
	}
	pack, ok := c.packs[packID]
	if !ok || !pack.AppliesTo(boat) {
		return nil, catalogSvc.ErrPackNotFound
	}
	return pack, nil
}

func newTestCatalog() *fakeCatalog {
	return &fakeCatalog{
		boats: map[string]*domain.BoatPricingProfile{
			"solar-450": {
				ID:              "solar-450",
				RequiresLicense: false,
				Extras: []domain.ExtraItem{
					{Name: "скипер", Price: decimal.NewFromInt(50)},
					{Name: "тент", Price: decimal.NewFromInt(20)},
					{Name: "холодильник", Price: decimal.NewFromInt(15)},
				},
			},
			"katran-700": {
				ID:              "katran-700",
				RequiresLicense: true,
				Extras: []domain.ExtraItem{
					{Name: "скипер", Price: decimal.NewFromInt(70)},
				},
			},
		},
		packs: map[string]*domain.ExtraPack{
			"comfort": {
				ID:          "comfort",
				ExtraNames:  []string{"скипер", "тент"},
				BundlePrice: decimal.NewFromInt(60),
			},
		},
	}
}

func newTestUseCase(t *testing.T) (*UseCase, string) {
	t.Helper()

	store := sessionsSvc.NewStore(time.Hour, nopLogger{})
	session, err := store.Create()
	require.NoError(t, err)

	return NewUseCase(store, newTestCatalog(), nopLogger{}), session.ID
}

func TestUseCase_Execute_SelectBoatAndDuration(t *testing.T) {
	uc, sessionID := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:   sessionID,
		BoatID:      ptr.Ptr("solar-450"),
		DurationKey: ptr.Ptr(domain.Duration3h),
	})

	require.NoError(t, err)
	assert.Equal(t, "solar-450", resp.BoatID)
	assert.Equal(t, domain.Duration3h, resp.DurationKey)
	assert.Empty(t, resp.ClearedFields)
}

func TestUseCase_Execute_BoatSwitchResetsIllegalDuration(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		SessionID:   sessionID,
		BoatID:      ptr.Ptr("solar-450"),
		DurationKey: ptr.Ptr(domain.Duration3h),
	})
	require.NoError(t, err)

	// 3h нелегальна для лицензионной лодки: продолжительность сбрасывается,
	// сброс виден в ClearedFields
	resp, err := uc.Execute(ctx, &Request{
		SessionID: sessionID,
		BoatID:    ptr.Ptr("katran-700"),
	})

	require.NoError(t, err)
	assert.Equal(t, "katran-700", resp.BoatID)
	assert.Empty(t, resp.DurationKey)
	assert.Contains(t, resp.ClearedFields, domain.FieldDuration)
}

func TestUseCase_Execute_BoatSwitchKeepsLegalDuration(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		SessionID:   sessionID,
		BoatID:      ptr.Ptr("solar-450"),
		DurationKey: ptr.Ptr(domain.Duration4h),
	})
	require.NoError(t, err)

	// 4h легальна для обеих категорий - переживает смену лодки
	resp, err := uc.Execute(ctx, &Request{
		SessionID: sessionID,
		BoatID:    ptr.Ptr("katran-700"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Duration4h, resp.DurationKey)
	assert.NotContains(t, resp.ClearedFields, domain.FieldDuration)
}

func TestUseCase_Execute_BoatSwitchClearsExtras(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		SessionID:   sessionID,
		BoatID:      ptr.Ptr("solar-450"),
		ToggleExtra: ptr.Ptr("холодильник"),
	})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &Request{
		SessionID: sessionID,
		BoatID:    ptr.Ptr("katran-700"),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.ExtraNames)
	assert.Empty(t, resp.PackID)
	assert.Contains(t, resp.ClearedFields, "extras")
}

func TestUseCase_Execute_LicenseFilterResetsMismatchedBoat(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		SessionID: sessionID,
		BoatID:    ptr.Ptr("solar-450"),
	})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &Request{
		SessionID:     sessionID,
		LicenseFilter: ptr.Ptr(true),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.BoatID)
	assert.Contains(t, resp.ClearedFields, domain.FieldBoat)
	assert.NotContains(t, resp.ClearedFields, "extras")
}

func TestUseCase_Execute_LicenseFilterResetClearsExtras(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		SessionID:    sessionID,
		BoatID:       ptr.Ptr("solar-450"),
		SelectPackID: ptr.Ptr("comfort"),
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{
		SessionID:   sessionID,
		ToggleExtra: ptr.Ptr("холодильник"),
	})
	require.NoError(t, err)

	// Пак и опции принадлежат сброшенной лодке и уходят вместе с ней
	resp, err := uc.Execute(ctx, &Request{
		SessionID:     sessionID,
		LicenseFilter: ptr.Ptr(true),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.BoatID)
	assert.Empty(t, resp.PackID)
	assert.Empty(t, resp.ExtraNames)
	assert.Contains(t, resp.ClearedFields, domain.FieldBoat)
	assert.Contains(t, resp.ClearedFields, "extras")
}

func TestUseCase_Execute_DateChangeKeepsDurations(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		SessionID:   sessionID,
		BoatID:      ptr.Ptr("solar-450"),
		DurationKey: ptr.Ptr(domain.Duration6h),
	})
	require.NoError(t, err)

	// Смена даты не трогает ни продолжительность, ни остальной выбор
	date := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(ctx, &Request{
		SessionID: sessionID,
		Date:      ptr.Ptr(date),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Duration6h, resp.DurationKey)
	require.NotNil(t, resp.Date)
	assert.True(t, resp.Date.Equal(date))
	assert.Empty(t, resp.ClearedFields)
}

func TestUseCase_Execute_ToggleExtra(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{
		SessionID:   sessionID,
		BoatID:      ptr.Ptr("solar-450"),
		ToggleExtra: ptr.Ptr("скипер"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"скипер"}, resp.ExtraNames)

	// Повторное переключение снимает выбор
	resp, err = uc.Execute(ctx, &Request{
		SessionID:   sessionID,
		ToggleExtra: ptr.Ptr("скипер"),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.ExtraNames)
}

func TestUseCase_Execute_PackLockedExtraToggleIsNoop(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		SessionID:    sessionID,
		BoatID:       ptr.Ptr("solar-450"),
		SelectPackID: ptr.Ptr("comfort"),
	})
	require.NoError(t, err)

	// "скипер" входит в активный пак: переключение закрепленной опции - no-op
	resp, err := uc.Execute(ctx, &Request{
		SessionID:   sessionID,
		ToggleExtra: ptr.Ptr("скипер"),
	})

	require.NoError(t, err)
	assert.Equal(t, "comfort", resp.PackID)
	assert.Empty(t, resp.ExtraNames)
}

func TestUseCase_Execute_DeselectPackKeepsIndependentExtras(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{
		SessionID:   sessionID,
		BoatID:      ptr.Ptr("solar-450"),
		ToggleExtra: ptr.Ptr("холодильник"),
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{
		SessionID:    sessionID,
		SelectPackID: ptr.Ptr("comfort"),
	})
	require.NoError(t, err)

	// Снятие пака: опции пака уходят, индивидуальный выбор остается
	resp, err := uc.Execute(ctx, &Request{
		SessionID:    sessionID,
		DeselectPack: true,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.PackID)
	assert.Equal(t, []string{"холодильник"}, resp.ExtraNames)
}

func TestUseCase_Execute_PackNotApplicableToBoat(t *testing.T) {
	uc, sessionID := newTestUseCase(t)
	ctx := context.Background()

	// У katran-700 нет опции "тент" - пак comfort неприменим
	_, err := uc.Execute(ctx, &Request{
		SessionID: sessionID,
		BoatID:    ptr.Ptr("katran-700"),
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{
		SessionID:    sessionID,
		SelectPackID: ptr.Ptr("comfort"),
	})
	assert.ErrorIs(t, err, ErrPackNotFound)
}

func TestUseCase_Execute_UnknownBoat(t *testing.T) {
	uc, sessionID := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: sessionID,
		BoatID:    ptr.Ptr("ghost"),
	})
	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestUseCase_Execute_SessionNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "nope"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUseCase_Execute_SelectAndDeselectPackConflict(t *testing.T) {
	uc, sessionID := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:    sessionID,
		SelectPackID: ptr.Ptr("comfort"),
		DeselectPack: true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
