package domain

import "time"

// Selection текущий выбор пользователя в рамках одной попытки бронирования.
// Принадлежит ровно одной сессии и никогда не разделяется между сессиями.
type Selection struct {
	BoatID      string
	LicenseOnly *bool // фильтр по категории прав, когда лодка еще не выбрана
	Date        time.Time
	DurationKey DurationKey

	// PackID выбранный пак (пустая строка = пак не выбран)
	PackID string

	// ExtraNames опции, выбранные пользователем индивидуально.
	// Опции активного пака сюда НЕ входят - они подразумеваются выбором пака.
	ExtraNames map[string]struct{}
}

// NewSelection создает пустой выбор
func NewSelection() *Selection {
	return &Selection{
		ExtraNames: make(map[string]struct{}),
	}
}

// HasPack возвращает true, если выбран пак
func (s *Selection) HasPack() bool {
	return s.PackID != ""
}

// HasExtra проверяет, выбрана ли опция индивидуально (без учета пака)
func (s *Selection) HasExtra(name string) bool {
	_, ok := s.ExtraNames[name]
	return ok
}

// EffectiveExtraNames возвращает полный набор активных опций:
// опции выбранного пака плюс индивидуально выбранные
func (s *Selection) EffectiveExtraNames(pack *ExtraPack) map[string]struct{} {
	result := make(map[string]struct{}, len(s.ExtraNames))
	for name := range s.ExtraNames {
		result[name] = struct{}{}
	}
	if pack != nil {
		for _, name := range pack.ExtraNames {
			result[name] = struct{}{}
		}
	}
	return result
}
