package durations

import "errors"

var (
	// ErrBoatNotFound возвращается, когда лодка отсутствует в каталоге
	ErrBoatNotFound = errors.New("durations: boat not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("durations: internal error")
)
