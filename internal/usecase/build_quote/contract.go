package build_quote

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	"github.com/m04kA/BRS-PricingService/internal/service/discount"
	"github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(id string) (*sessions.Session, error)
}

// Catalog интерфейс каталога тарифов
type Catalog interface {
	BoatByID(boatID string) (*domain.BoatPricingProfile, error)
	AvailableDurations(boatID string) ([]domain.DurationKey, error)
	PriceFor(boatID string, season domain.Season, key domain.DurationKey) (decimal.Decimal, error)
	PackForBoat(boatID, packID string) (*domain.ExtraPack, error)
}

// ExtrasPricer интерфейс расчета стоимости опций
type ExtrasPricer interface {
	Price(boat *domain.BoatPricingProfile, selection *domain.Selection, pack *domain.ExtraPack) (decimal.Decimal, error)
}

// DiscountCalculator интерфейс применения промокода
type DiscountCalculator interface {
	Apply(promo *domain.PromotionCode, basePrice, extrasTotal decimal.Decimal) (discount.Result, error)
}

// QuoteMetrics счетчик построенных расчетов по исходу
type QuoteMetrics interface {
	ObserveQuoteBuilt(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
