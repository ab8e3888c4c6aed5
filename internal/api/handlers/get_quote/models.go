package get_quote

import (
	buildQuote "github.com/m04kA/BRS-PricingService/internal/usecase/build_quote"
)

// AppliedPromotionResponse примененный код в составе расчета
type AppliedPromotionResponse struct {
	Kind             string `json:"kind"`
	Code             string `json:"code"`
	Value            string `json:"value"`
	ComputedDiscount string `json:"computedDiscount"`
}

// QuoteResponse HTTP response model итогового расчета
type QuoteResponse struct {
	BoatID      string                    `json:"boatId"`
	Season      string                    `json:"season"`
	PeriodLabel string                    `json:"periodLabel"`
	Duration    string                    `json:"duration"`
	BasePrice   string                    `json:"basePrice"`
	ExtrasTotal string                    `json:"extrasTotal"`
	Subtotal    string                    `json:"subtotal"`
	Promotion   *AppliedPromotionResponse `json:"promotion,omitempty"`
	Total       string                    `json:"total"`
	Deposit     string                    `json:"deposit"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildQuote.Response) *QuoteResponse {
	out := &QuoteResponse{
		BoatID:      resp.Summary.BoatID,
		Season:      string(resp.Summary.Season),
		PeriodLabel: resp.PeriodLabel,
		Duration:    string(resp.Summary.DurationKey),
		BasePrice:   resp.Summary.BasePrice.String(),
		ExtrasTotal: resp.Summary.ExtrasTotal.String(),
		Subtotal:    resp.Summary.Subtotal.String(),
		Total:       resp.Summary.Total.String(),
		Deposit:     resp.Deposit.String(),
	}

	if promo := resp.Summary.Promotion; promo != nil {
		out.Promotion = &AppliedPromotionResponse{
			Kind:             string(promo.Kind),
			Code:             promo.Code,
			Value:            promo.Value.String(),
			ComputedDiscount: promo.ComputedDiscount.String(),
		}
	}

	return out
}
