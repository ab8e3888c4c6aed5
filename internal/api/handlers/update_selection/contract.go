package update_selection

import (
	"context"

	updateSelection "github.com/m04kA/BRS-PricingService/internal/usecase/update_selection"
)

type UpdateSelectionUseCase interface {
	Execute(ctx context.Context, req *updateSelection.Request) (*updateSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
