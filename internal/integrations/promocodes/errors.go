package promocodes

import "errors"

var (
	// ErrCodeNotRecognized возвращается, когда код не является скидочным
	ErrCodeNotRecognized = errors.New("promocodes client: code is not a discount code")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("promocodes client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("promocodes client: invalid response")
)
