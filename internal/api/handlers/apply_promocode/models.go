package apply_promocode

import (
	applyPromocode "github.com/m04kA/BRS-PricingService/internal/usecase/apply_promocode"
)

// ApplyPromocodeRequest HTTP request model
type ApplyPromocodeRequest struct {
	Code string `json:"code"`
}

// PromocodeResponse HTTP response model
type PromocodeResponse struct {
	Kind  string `json:"kind"` // gift_card | percentage
	Code  string `json:"code"`
	Value string `json:"value"` // остаток карты или процент
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyPromocode.Response) *PromocodeResponse {
	return &PromocodeResponse{
		Kind:  string(resp.Kind),
		Code:  resp.Code,
		Value: resp.Value.String(),
	}
}
