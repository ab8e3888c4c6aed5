package update_contact

import (
	"github.com/m04kA/BRS-PricingService/internal/domain"
	"github.com/m04kA/BRS-PricingService/internal/service/bookingform"
	"github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(id string) (*sessions.Session, error)
}

// Catalog интерфейс каталога тарифов
type Catalog interface {
	BoatByID(boatID string) (*domain.BoatPricingProfile, error)
}

// FormValidator интерфейс валидатора формы бронирования
type FormValidator interface {
	ShowFieldError(field string, in *bookingform.Input, state *domain.FieldValidationState) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
