package get_quote

import (
	"context"

	buildQuote "github.com/m04kA/BRS-PricingService/internal/usecase/build_quote"
)

type BuildQuoteUseCase interface {
	Execute(ctx context.Context, req *buildQuote.Request) (*buildQuote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
