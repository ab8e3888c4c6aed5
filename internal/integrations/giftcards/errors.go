package giftcards

import "errors"

var (
	// ErrCodeNotRecognized возвращается, когда код не является подарочной картой.
	// Не жесткая ошибка: код дальше проверяется как скидочный.
	ErrCodeNotRecognized = errors.New("giftcards client: code is not a gift card")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("giftcards client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("giftcards client: invalid response")
)
