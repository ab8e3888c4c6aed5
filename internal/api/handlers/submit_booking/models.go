package submit_booking

import (
	getQuote "github.com/m04kA/BRS-PricingService/internal/api/handlers/get_quote"
	submitBooking "github.com/m04kA/BRS-PricingService/internal/usecase/submit_booking"
)

// SubmitResponse HTTP response model успешной отправки
type SubmitResponse struct {
	Quote *getQuote.QuoteResponse `json:"quote"`
}

// ValidationErrorsResponse HTTP response model при непройденной валидации
type ValidationErrorsResponse struct {
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors"`
}

// FromUseCaseResponse конвертирует успешный ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitResponse {
	return &SubmitResponse{
		Quote: getQuote.FromUseCaseResponse(resp.Quote),
	}
}
