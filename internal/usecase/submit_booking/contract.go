package submit_booking

import (
	"context"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	"github.com/m04kA/BRS-PricingService/internal/service/bookingform"
	"github.com/m04kA/BRS-PricingService/internal/service/sessions"
	buildQuote "github.com/m04kA/BRS-PricingService/internal/usecase/build_quote"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(id string) (*sessions.Session, error)
	Delete(id string)
}

// Catalog интерфейс каталога тарифов
type Catalog interface {
	BoatByID(boatID string) (*domain.BoatPricingProfile, error)
}

// FormValidator интерфейс валидатора формы бронирования
type FormValidator interface {
	ValidateAll(in *bookingform.Input) map[string]string
}

// QuoteBuilder интерфейс построителя расчета стоимости
type QuoteBuilder interface {
	Execute(ctx context.Context, req *buildQuote.Request) (*buildQuote.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
