package get_legal_durations

import (
	"time"

	"github.com/m04kA/BRS-PricingService/internal/service/durations"
)

// DurationsService интерфейс сервиса легальных продолжительностей
type DurationsService interface {
	LegalForLicenseFilter(requiresLicense bool) []durations.LegalDuration
	LegalForBoat(boatID string) ([]durations.LegalDuration, error)
	PricedForBoat(boatID string, date time.Time) ([]durations.LegalDuration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
