package get_legal_durations

import (
	"github.com/m04kA/BRS-PricingService/internal/service/durations"
)

// DurationsResponse HTTP response model
type DurationsResponse struct {
	Durations []Duration `json:"durations"`
}

// Duration легальная продолжительность аренды
type Duration struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Price *string `json:"price,omitempty"`
}

// FromDomain конвертирует список продолжительностей в HTTP response
func FromDomain(items []durations.LegalDuration) *DurationsResponse {
	resp := &DurationsResponse{Durations: make([]Duration, len(items))}
	for i, d := range items {
		out := Duration{
			Key:   string(d.Key),
			Label: d.Label,
		}
		if d.Price != nil {
			p := d.Price.String()
			out.Price = &p
		}
		resp.Durations[i] = out
	}
	return resp
}
