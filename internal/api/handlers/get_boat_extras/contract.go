package get_boat_extras

import (
	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// Catalog интерфейс каталога тарифов
type Catalog interface {
	ExtrasFor(boatID string) ([]domain.ExtraItem, error)
	PacksFor(boatID string) ([]domain.ExtraPack, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
