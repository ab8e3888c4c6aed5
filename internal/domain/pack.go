package domain

import "github.com/shopspring/decimal"

// ExtraPack именованный набор опций по фиксированной сниженной цене.
// Паки глобальны, но применимы только к лодкам, у которых есть все опции набора.
type ExtraPack struct {
	ID            string
	Name          string
	LocalizedName string
	ExtraNames    []string
	BundlePrice   decimal.Decimal
	OriginalPrice decimal.Decimal // сумма цен опций по отдельности
}

// Savings экономия пака относительно покупки опций по отдельности.
// Инвариант каталога: Savings() >= 0.
func (p *ExtraPack) Savings() decimal.Decimal {
	return p.OriginalPrice.Sub(p.BundlePrice)
}

// Contains проверяет, входит ли опция в набор пака
func (p *ExtraPack) Contains(extraName string) bool {
	for _, n := range p.ExtraNames {
		if n == extraName {
			return true
		}
	}
	return false
}

// AppliesTo проверяет, что все опции пака существуют у лодки
func (p *ExtraPack) AppliesTo(boat *BoatPricingProfile) bool {
	for _, n := range p.ExtraNames {
		if !boat.HasExtra(n) {
			return false
		}
	}
	return true
}
