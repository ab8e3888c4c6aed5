package domain

import "github.com/shopspring/decimal"

// SeasonPricing тарифная таблица лодки для одного сезона
type SeasonPricing struct {
	PeriodLabel string // например "апрель - июнь, сентябрь - октябрь"
	Prices      map[DurationKey]decimal.Decimal
}

// ExtraItem индивидуально оплачиваемая опция лодки.
// Name уникально в пределах лодки.
type ExtraItem struct {
	Name  string
	Price decimal.Decimal
	Icon  string
}

// BoatPricingProfile тарифный профиль лодки из каталога.
// Иммутабелен после загрузки каталога; одна копия разделяется всеми сессиями.
type BoatPricingProfile struct {
	ID              string
	Name            string
	RequiresLicense bool
	Capacity        int
	Deposit         decimal.Decimal
	Pricing         map[Season]SeasonPricing
	Extras          []ExtraItem
}

// ExtraByName находит опцию лодки по имени
func (b *BoatPricingProfile) ExtraByName(name string) (ExtraItem, bool) {
	for _, e := range b.Extras {
		if e.Name == name {
			return e, true
		}
	}
	return ExtraItem{}, false
}

// HasExtra проверяет, что у лодки есть опция с указанным именем
func (b *BoatPricingProfile) HasExtra(name string) bool {
	_, ok := b.ExtraByName(name)
	return ok
}
