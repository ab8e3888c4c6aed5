package build_quote

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// Request запрос на построение расчета стоимости
type Request struct {
	SessionID string
}

// Response расчет стоимости бронирования
type Response struct {
	Summary domain.PricedBookingSummary

	// PeriodLabel подпись тарифного периода сезона (для отображения)
	PeriodLabel string

	// Deposit залог за лодку (информативно, в итог не входит)
	Deposit decimal.Decimal
}
