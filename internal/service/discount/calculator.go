package discount

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// percentBase делитель процентной скидки
var percentBase = decimal.NewFromInt(100)

// Result результат применения промокода
type Result struct {
	// ComputedDiscount фактическая скидка (0, если промокода нет)
	ComputedDiscount decimal.Decimal

	// Total итоговая сумма: base + extras - ComputedDiscount
	Total decimal.Decimal
}

// Calculator применяет промокод к паре (базовая цена, стоимость опций)
type Calculator struct{}

// NewCalculator создает новый экземпляр калькулятора скидок
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Apply считает скидку по правилам типа промокода.
//
// Подарочная карта: скидка = min(остаток карты, base + extras) -
// карта никогда не превышает сумму заказа и не дает отрицательный итог.
//
// Процентная скидка: скидка = round(base * percentage / 100), применяется
// ТОЛЬКО к базовой цене аренды, опции всегда оплачиваются полностью.
// Это бизнес-правило, а не артефакт округления. Округление: до 2 знаков,
// половина от нуля (round-half-up для положительных сумм).
func (c *Calculator) Apply(promo *domain.PromotionCode, basePrice, extrasTotal decimal.Decimal) (Result, error) {
	subtotal := basePrice.Add(extrasTotal)

	var computed decimal.Decimal
	switch {
	case promo == nil:
		computed = decimal.Zero

	case promo.Kind == domain.PromotionGiftCard:
		computed = promo.RemainingValue
		if computed.GreaterThan(subtotal) {
			computed = subtotal
		}

	case promo.Kind == domain.PromotionPercentage:
		computed = basePrice.Mul(promo.Percentage).Div(percentBase).Round(2)

	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownPromotionKind, promo.Kind)
	}

	total := subtotal.Sub(computed)
	if total.IsNegative() {
		// Недостижимо при соблюдении правил капирования выше
		return Result{}, fmt.Errorf("%w: base=%s extras=%s discount=%s",
			ErrNegativeTotal, basePrice.String(), extrasTotal.String(), computed.String())
	}

	return Result{
		ComputedDiscount: computed,
		Total:            total,
	}, nil
}
