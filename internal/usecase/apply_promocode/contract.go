package apply_promocode

import (
	"context"

	"github.com/m04kA/BRS-PricingService/internal/integrations/giftcards"
	"github.com/m04kA/BRS-PricingService/internal/integrations/promocodes"
	"github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(id string) (*sessions.Session, error)
}

// GiftCardClient интерфейс клиента сервиса подарочных карт
type GiftCardClient interface {
	Validate(ctx context.Context, code string) (*giftcards.GiftCard, error)
}

// DiscountCodeClient интерфейс клиента сервиса скидочных кодов
type DiscountCodeClient interface {
	Validate(ctx context.Context, code string) (*promocodes.DiscountCode, error)
}

// PromoMetrics счетчик завершенных валидаций промокодов по исходу
type PromoMetrics interface {
	ObservePromoLookup(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
