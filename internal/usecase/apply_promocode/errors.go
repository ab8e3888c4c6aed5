package apply_promocode

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidCode возвращается, когда код не прошел валидацию ни как
	// подарочная карта, ни как скидочный код. Пользователь может исправить
	// код и повторить; расчет без промокода остается доступным.
	ErrInvalidCode = errors.New("promotion code is not valid")

	// ErrValidationInFlight возвращается при повторной отправке того же кода,
	// пока его валидация выполняется
	ErrValidationInFlight = errors.New("validation for this code is already in flight")

	// ErrSuperseded возвращается, когда результат валидации устарел:
	// пользователь успел отправить другой код
	ErrSuperseded = errors.New("validation superseded by a newer code")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
