package discount

import "errors"

var (
	// ErrUnknownPromotionKind возвращается для промокода с неизвестным типом.
	// Множество типов закрытое; новый тип требует явной ветки расчета.
	ErrUnknownPromotionKind = errors.New("discount: unknown promotion kind")

	// ErrNegativeTotal возвращается, если итоговая сумма получилась отрицательной.
	// При корректных правилах капирования недостижимо, проверяется защитно.
	ErrNegativeTotal = errors.New("discount: computed total is negative")
)
