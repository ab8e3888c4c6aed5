package domain

// DurationKey фиксированная продолжительность аренды, ключ тарифной таблицы
type DurationKey string

const (
	Duration1h DurationKey = "1h"
	Duration2h DurationKey = "2h"
	Duration3h DurationKey = "3h"
	Duration4h DurationKey = "4h"
	Duration6h DurationKey = "6h"
	Duration8h DurationKey = "8h"
)

// AllDurations полный упорядоченный набор продолжительностей
var AllDurations = []DurationKey{
	Duration1h,
	Duration2h,
	Duration3h,
	Duration4h,
	Duration6h,
	Duration8h,
}

// LicensedDurations продолжительности, доступные для лодок с правами.
// Лодки, требующие лицензию, сдаются только на 2, 4 и 8 часов.
var LicensedDurations = []DurationKey{
	Duration2h,
	Duration4h,
	Duration8h,
}

var durationLabels = map[DurationKey]string{
	Duration1h: "1 час",
	Duration2h: "2 часа",
	Duration3h: "3 часа",
	Duration4h: "4 часа",
	Duration6h: "6 часов",
	Duration8h: "8 часов (весь день)",
}

// DurationsForLicense возвращает упорядоченный набор легальных продолжительностей
// для категории лодки (с лицензией / без)
func DurationsForLicense(requiresLicense bool) []DurationKey {
	if requiresLicense {
		return append([]DurationKey(nil), LicensedDurations...)
	}
	return append([]DurationKey(nil), AllDurations...)
}

// Label возвращает человекочитаемую подпись продолжительности
func (k DurationKey) Label() string {
	return durationLabels[k]
}

// Valid проверяет, что ключ продолжительности входит в известный набор
func (k DurationKey) Valid() bool {
	_, ok := durationLabels[k]
	return ok
}
