package domain

import (
	"errors"
	"time"
)

// Season сезонный тариф. Выводится из даты, никогда не хранится.
type Season string

const (
	SeasonLow  Season = "low"
	SeasonMid  Season = "mid"
	SeasonHigh Season = "high"
)

// ErrOutOfOperatingSeason возвращается для дат вне сезона работы (ноябрь - март)
var ErrOutOfOperatingSeason = errors.New("date is outside the operating season")

// AllSeasons порядок сезонов для детерминированных проверок каталога
var AllSeasons = []Season{SeasonLow, SeasonMid, SeasonHigh}

// ResolveSeason определяет сезон по календарному месяцу даты.
// Август - высокий сезон, июль - средний, апрель-июнь и сентябрь-октябрь - низкий.
// Для остальных месяцев прокат не работает.
func ResolveSeason(date time.Time) (Season, error) {
	switch date.Month() {
	case time.August:
		return SeasonHigh, nil
	case time.July:
		return SeasonMid, nil
	case time.April, time.May, time.June, time.September, time.October:
		return SeasonLow, nil
	default:
		return "", ErrOutOfOperatingSeason
	}
}

// Valid проверяет, что значение сезона допустимо
func (s Season) Valid() bool {
	return s == SeasonLow || s == SeasonMid || s == SeasonHigh
}
