package update_selection

import (
	"github.com/m04kA/BRS-PricingService/internal/domain"
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
	PackForBoat(boatID, packID string) (*domain.ExtraPack, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
