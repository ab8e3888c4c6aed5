package update_selection

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.DurationKey != nil && *req.DurationKey != "" && !req.DurationKey.Valid() {
		return fmt.Errorf("%w: unknown duration key %q", ErrInvalidInput, *req.DurationKey)
	}

	if req.SelectPackID != nil && req.DeselectPack {
		return fmt.Errorf("%w: select and deselect pack in one request", ErrInvalidInput)
	}

	return nil
}
