package apply_promocode

import (
	"context"

	applyPromocode "github.com/m04kA/BRS-PricingService/internal/usecase/apply_promocode"
)

type ApplyPromocodeUseCase interface {
	Execute(ctx context.Context, req *applyPromocode.Request) (*applyPromocode.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
