package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения формы бронирования
const (
	MinPeopleCount = 1
	MaxNameLength  = 100
)
