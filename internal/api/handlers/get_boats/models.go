package get_boats

import (
	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// BoatsResponse HTTP response model
type BoatsResponse struct {
	Boats []Boat `json:"boats"`
}

// Boat краткая карточка лодки каталога
type Boat struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RequiresLicense bool   `json:"requiresLicense"`
	Capacity        int    `json:"capacity"`
	Deposit         string `json:"deposit"`
}

// FromDomain конвертирует профили каталога в HTTP response
func FromDomain(boats []*domain.BoatPricingProfile) *BoatsResponse {
	result := make([]Boat, len(boats))
	for i, b := range boats {
		result[i] = Boat{
			ID:              b.ID,
			Name:            b.Name,
			RequiresLicense: b.RequiresLicense,
			Capacity:        b.Capacity,
			Deposit:         b.Deposit.String(),
		}
	}
	return &BoatsResponse{Boats: result}
}
