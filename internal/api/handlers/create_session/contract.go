package create_session

import (
	"github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create() (*sessions.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
