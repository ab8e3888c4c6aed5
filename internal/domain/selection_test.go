package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSelection_EffectiveExtraNames_NoPack(t *testing.T) {
	sel := NewSelection()
	sel.ExtraNames["скипер"] = struct{}{}
	sel.ExtraNames["холодильник"] = struct{}{}

	effective := sel.EffectiveExtraNames(nil)

	assert.Len(t, effective, 2)
	assert.Contains(t, effective, "скипер")
	assert.Contains(t, effective, "холодильник")
}

func TestSelection_EffectiveExtraNames_PackUnion(t *testing.T) {
	pack := &ExtraPack{
		ID:         "comfort",
		ExtraNames: []string{"скипер", "тент"},
	}

	sel := NewSelection()
	sel.PackID = pack.ID
	sel.ExtraNames["холодильник"] = struct{}{}

	effective := sel.EffectiveExtraNames(pack)

	// Опции пака плюс индивидуальный выбор, без дублей
	assert.Len(t, effective, 3)
	assert.Contains(t, effective, "скипер")
	assert.Contains(t, effective, "тент")
	assert.Contains(t, effective, "холодильник")
}

func TestSelection_DeselectPackKeepsIndependentExtras(t *testing.T) {
	pack := &ExtraPack{ID: "comfort", ExtraNames: []string{"скипер", "тент"}}

	sel := NewSelection()
	sel.ExtraNames["холодильник"] = struct{}{}
	sel.PackID = pack.ID

	// Снятие пака: индивидуальные опции не хранят опции пака,
	// поэтому выбор возвращается ровно к состоянию до пака
	sel.PackID = ""
	effective := sel.EffectiveExtraNames(nil)

	assert.Len(t, effective, 1)
	assert.Contains(t, effective, "холодильник")
	assert.NotContains(t, effective, "скипер")
}

func TestExtraPack_Savings(t *testing.T) {
	pack := &ExtraPack{
		BundlePrice:   decimal.NewFromInt(80),
		OriginalPrice: decimal.NewFromInt(100),
	}
	assert.True(t, pack.Savings().Equal(decimal.NewFromInt(20)))
}

func TestExtraPack_AppliesTo(t *testing.T) {
	boat := &BoatPricingProfile{
		ID: "solar-450",
		Extras: []ExtraItem{
			{Name: "скипер", Price: decimal.NewFromInt(50)},
			{Name: "тент", Price: decimal.NewFromInt(20)},
		},
	}

	applicable := &ExtraPack{ExtraNames: []string{"скипер", "тент"}}
	notApplicable := &ExtraPack{ExtraNames: []string{"скипер", "гриль"}}

	assert.True(t, applicable.AppliesTo(boat))
	assert.False(t, notApplicable.AppliesTo(boat))
}

func TestDurationsForLicense(t *testing.T) {
	licensed := DurationsForLicense(true)
	assert.Equal(t, []DurationKey{Duration2h, Duration4h, Duration8h}, licensed)

	unlicensed := DurationsForLicense(false)
	assert.Equal(t, AllDurations, unlicensed)

	// Возвращаются копии: мутация результата не портит глобальный набор
	licensed[0] = Duration1h
	assert.Equal(t, Duration2h, LicensedDurations[0])
}

func TestDurationKey_Valid(t *testing.T) {
	for _, key := range AllDurations {
		assert.True(t, key.Valid(), "key %s", key)
	}
	assert.False(t, DurationKey("5h").Valid())
	assert.False(t, DurationKey("").Valid())
}
