package update_selection

import (
	"time"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// Request изменения выбора пользователя. Заполняются только изменившиеся поля;
// применяются в фиксированном порядке (фильтр прав → лодка → легальность
// продолжительности → дата → пак/опции).
type Request struct {
	SessionID string

	// LicenseFilter фильтр по категории прав (когда лодка еще не выбрана)
	LicenseFilter *bool

	// BoatID выбранная лодка
	BoatID *string

	// Date дата аренды
	Date *time.Time

	// DurationKey выбранная продолжительность
	DurationKey *domain.DurationKey

	// ToggleExtra имя опции, которую пользователь переключил
	ToggleExtra *string

	// SelectPackID выбранный пак
	SelectPackID *string

	// DeselectPack снятие выбранного пака
	DeselectPack bool
}

// Response состояние выбора после применения изменений
type Response struct {
	BoatID      string
	Date        *time.Time
	DurationKey domain.DurationKey
	PackID      string
	ExtraNames  []string

	// ClearedFields поля, автоматически сброшенные пайплайном
	// (например duration после смены лодки)
	ClearedFields []string
}
