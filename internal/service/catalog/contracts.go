package catalog

import (
	"context"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога лодок
type CatalogRepository interface {
	ListBoats(ctx context.Context) ([]*domain.BoatPricingProfile, error)
	ListPacks(ctx context.Context) ([]*domain.ExtraPack, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
