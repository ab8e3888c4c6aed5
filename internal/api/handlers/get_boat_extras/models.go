package get_boat_extras

import (
	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// ExtrasResponse HTTP response model
type ExtrasResponse struct {
	BoatID string  `json:"boatId"`
	Extras []Extra `json:"extras"`
	Packs  []Pack  `json:"packs"`
}

// Extra индивидуальная опция лодки
type Extra struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Icon  string `json:"icon,omitempty"`
}

// Pack набор опций по фиксированной цене
type Pack struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	LocalizedName string   `json:"localizedName,omitempty"`
	Extras        []string `json:"extras"`
	BundlePrice   string   `json:"bundlePrice"`
	OriginalPrice string   `json:"originalPrice"`
	Savings       string   `json:"savings"`
}

// FromDomain конвертирует опции и паки в HTTP response
func FromDomain(boatID string, extras []domain.ExtraItem, packs []domain.ExtraPack) *ExtrasResponse {
	resp := &ExtrasResponse{
		BoatID: boatID,
		Extras: make([]Extra, len(extras)),
		Packs:  make([]Pack, len(packs)),
	}

	for i, e := range extras {
		resp.Extras[i] = Extra{
			Name:  e.Name,
			Price: e.Price.String(),
			Icon:  e.Icon,
		}
	}

	for i := range packs {
		p := &packs[i]
		resp.Packs[i] = Pack{
			ID:            p.ID,
			Name:          p.Name,
			LocalizedName: p.LocalizedName,
			Extras:        p.ExtraNames,
			BundlePrice:   p.BundlePrice.String(),
			OriginalPrice: p.OriginalPrice.String(),
			Savings:       p.Savings().String(),
		}
	}

	return resp
}
