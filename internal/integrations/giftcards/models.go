package giftcards

import "github.com/shopspring/decimal"

// ValidateRequest запрос на валидацию кода подарочной карты
type ValidateRequest struct {
	Code string `json:"code"`
}

// ValidateResponse ответ сервиса подарочных карт.
// Разные версии сервиса возвращают остаток в разных полях.
type ValidateResponse struct {
	RemainingBalance *decimal.Decimal `json:"remainingBalance,omitempty"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
}

// GiftCard валидированная подарочная карта
type GiftCard struct {
	Code           string
	RemainingValue decimal.Decimal
}
