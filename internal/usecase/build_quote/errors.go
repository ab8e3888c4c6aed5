package build_quote

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrSelectionIncomplete возвращается, когда для расчета не хватает
	// выбранных полей (лодка, дата или продолжительность)
	ErrSelectionIncomplete = errors.New("selection is incomplete")

	// ErrOutOfSeason возвращается для даты вне сезона работы проката.
	// Фатально для расчета: итог не строится, сезон молча не подставляется.
	ErrOutOfSeason = errors.New("date is outside the operating season")

	// ErrNoSuchPrice возвращается при отсутствии цены в каталоге.
	// Признак ошибки данных: бронирование блокируется.
	ErrNoSuchPrice = errors.New("no price for selection")

	// ErrIllegalDuration возвращается, когда продолжительность выбора
	// нелегальна для лодки (защитная проверка, пайплайн выбора такое сбрасывает)
	ErrIllegalDuration = errors.New("duration is not legal for boat")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
