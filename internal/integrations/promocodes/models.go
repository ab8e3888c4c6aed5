package promocodes

import "github.com/shopspring/decimal"

// ValidateRequest запрос на валидацию скидочного кода
type ValidateRequest struct {
	Code string `json:"code"`
}

// ValidateResponse ответ сервиса скидочных кодов.
// Процент скидки может приходить в поле percentage или discount.
type ValidateResponse struct {
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	Discount   *decimal.Decimal `json:"discount,omitempty"`
}

// DiscountCode валидированный скидочный код
type DiscountCode struct {
	Code       string
	Percentage decimal.Decimal
}
