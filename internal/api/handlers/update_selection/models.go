package update_selection

import (
	"time"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	updateSelection "github.com/m04kA/BRS-PricingService/internal/usecase/update_selection"
)

// UpdateSelectionRequest HTTP request model.
// Передаются только изменившиеся поля.
type UpdateSelectionRequest struct {
	LicenseFilter *bool   `json:"licenseFilter,omitempty"`
	BoatID        *string `json:"boatId,omitempty"`
	Date          *string `json:"date,omitempty"` // YYYY-MM-DD
	DurationKey   *string `json:"durationKey,omitempty"`
	ToggleExtra   *string `json:"toggleExtra,omitempty"`
	SelectPackID  *string `json:"selectPackId,omitempty"`
	DeselectPack  bool    `json:"deselectPack,omitempty"`
}

// SelectionResponse HTTP response model
type SelectionResponse struct {
	BoatID        string   `json:"boatId"`
	Date          string   `json:"date,omitempty"`
	DurationKey   string   `json:"durationKey"`
	PackID        string   `json:"packId"`
	Extras        []string `json:"extras"`
	ClearedFields []string `json:"clearedFields,omitempty"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func ToUseCaseRequest(sessionID string, req *UpdateSelectionRequest) (*updateSelection.Request, error) {
	result := &updateSelection.Request{
		SessionID:     sessionID,
		LicenseFilter: req.LicenseFilter,
		BoatID:        req.BoatID,
		ToggleExtra:   req.ToggleExtra,
		SelectPackID:  req.SelectPackID,
		DeselectPack:  req.DeselectPack,
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return nil, err
		}
		result.Date = &date
	}

	if req.DurationKey != nil {
		key := domain.DurationKey(*req.DurationKey)
		result.DurationKey = &key
	}

	return result, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSelection.Response) *SelectionResponse {
	result := &SelectionResponse{
		BoatID:        resp.BoatID,
		DurationKey:   string(resp.DurationKey),
		PackID:        resp.PackID,
		Extras:        resp.ExtraNames,
		ClearedFields: resp.ClearedFields,
	}
	if resp.Date != nil {
		result.Date = resp.Date.Format(domain.DateFormat)
	}
	return result
}
