package clear_promocode

import (
	sessionsSvc "github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

type SessionStore interface {
	Get(id string) (*sessionsSvc.Session, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
