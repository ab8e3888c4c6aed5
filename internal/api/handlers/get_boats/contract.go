package get_boats

import (
	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// Catalog интерфейс каталога тарифов
type Catalog interface {
	Boats() []*domain.BoatPricingProfile
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
