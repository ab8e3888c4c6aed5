package domain

import "github.com/shopspring/decimal"

// PromotionKind тип промокода (закрытое множество)
type PromotionKind string

const (
	// PromotionGiftCard подарочная карта с остатком средств
	PromotionGiftCard PromotionKind = "gift_card"

	// PromotionPercentage процентная скидка на базовую стоимость аренды
	PromotionPercentage PromotionKind = "percentage"
)

// PromotionCode валидированный промокод. Тэгированное объединение:
// для PromotionGiftCard заполнен RemainingValue, для PromotionPercentage - Percentage.
// Одновременно в сессии может быть активен не более одного промокода.
type PromotionCode struct {
	Kind           PromotionKind
	Code           string // нормализованный код (trim + uppercase)
	RemainingValue decimal.Decimal
	Percentage     decimal.Decimal
}

// NewGiftCard создает промокод подарочной карты
func NewGiftCard(code string, remainingValue decimal.Decimal) PromotionCode {
	return PromotionCode{
		Kind:           PromotionGiftCard,
		Code:           code,
		RemainingValue: remainingValue,
	}
}

// NewPercentageDiscount создает промокод процентной скидки
func NewPercentageDiscount(code string, percentage decimal.Decimal) PromotionCode {
	return PromotionCode{
		Kind:       PromotionPercentage,
		Code:       code,
		Percentage: percentage,
	}
}
