package submit_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrValidationFailed возвращается, когда хотя бы одно поле формы
	// не прошло валидацию. Отправка прерывается целиком, частичной
	// отправки и молчаливых исправлений нет.
	ErrValidationFailed = errors.New("booking form validation failed")

	// ErrQuoteFailed возвращается, когда итоговый расчет не построился
	// (сезон, цена, легальность) - бронирование блокируется
	ErrQuoteFailed = errors.New("final quote could not be built")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
