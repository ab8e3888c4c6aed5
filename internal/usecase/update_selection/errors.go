package update_selection

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrBoatNotFound возвращается, когда лодка отсутствует в каталоге
	ErrBoatNotFound = errors.New("boat not found")

	// ErrPackNotFound возвращается, когда пак не применим к выбранной лодке
	ErrPackNotFound = errors.New("extra pack not found")

	// ErrExtraNotFound возвращается, когда опция отсутствует у выбранной лодки
	ErrExtraNotFound = errors.New("extra not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
