package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrValidationInFlight возвращается при повторной отправке того же
	// промокода, пока его валидация еще выполняется
	ErrValidationInFlight = errors.New("sessions: promotion validation already in flight")

	// ErrInternal возвращается при внутренних ошибках хранилища сессий
	ErrInternal = errors.New("sessions: internal error")
)
