package submit_booking

import (
	buildQuote "github.com/m04kA/BRS-PricingService/internal/usecase/build_quote"
)

// Request запрос на отправку формы бронирования
type Request struct {
	SessionID string
}

// Response результат отправки формы.
// При ошибках валидации возвращается вместе с ErrValidationFailed.
type Response struct {
	// FieldErrors ошибки полей (поле -> сообщение); пусто при успехе
	FieldErrors map[string]string

	// Quote итоговый расчет; заполнен только при успешной отправке
	Quote *buildQuote.Response
}
