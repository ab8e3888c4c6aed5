package apply_promocode

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// Request запрос на применение промокода к сессии
type Request struct {
	SessionID string
	Code      string // сырой код пользователя, нормализуется внутри
}

// Response результат успешной валидации промокода
type Response struct {
	Kind domain.PromotionKind
	Code string // нормализованный код

	// Value остаток подарочной карты или процент скидки
	Value decimal.Decimal
}
