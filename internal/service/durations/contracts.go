package durations

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// Catalog интерфейс каталога тарифов
type Catalog interface {
	BoatByID(boatID string) (*domain.BoatPricingProfile, error)
	AvailableDurations(boatID string) ([]domain.DurationKey, error)
	PriceFor(boatID string, season domain.Season, key domain.DurationKey) (decimal.Decimal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
