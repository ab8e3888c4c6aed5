package domain

import "github.com/shopspring/decimal"

// AppliedPromotion промокод, примененный к расчету
type AppliedPromotion struct {
	Kind PromotionKind
	Code string

	// Value исходное значение промокода: остаток подарочной карты
	// или процент скидки
	Value decimal.Decimal

	// ComputedDiscount фактически примененная скидка
	ComputedDiscount decimal.Decimal
}

// PricedBookingSummary итоговый расчет стоимости бронирования.
// Иммутабельный артефакт: пересчитывается заново при каждом изменении входных
// данных, никогда не мутируется и не кэшируется.
type PricedBookingSummary struct {
	BoatID      string
	Season      Season
	DurationKey DurationKey

	BasePrice   decimal.Decimal
	ExtrasTotal decimal.Decimal
	Promotion   *AppliedPromotion

	// Subtotal = BasePrice + ExtrasTotal
	Subtotal decimal.Decimal

	// Total = Subtotal - скидка; инвариант Total >= 0
	Total decimal.Decimal
}
