package promocodes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса валидации скидочных кодов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса скидочных кодов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Validate проверяет код у внешнего сервиса скидочных кодов.
// Любой неуспешный статус означает "код не существует".
func (c *Client) Validate(ctx context.Context, code string) (*DiscountCode, error) {
	url := fmt.Sprintf("%s/api/promocodes/validate", c.baseURL)

	body, err := json.Marshal(ValidateRequest{Code: code})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Info("Discount code validation rejected code=%s status=%d", code, resp.StatusCode)
		return nil, ErrCodeNotRecognized
	}

	var payload ValidateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	discount := &DiscountCode{Code: code}
	switch {
	case payload.Percentage != nil:
		discount.Percentage = *payload.Percentage
	case payload.Discount != nil:
		discount.Percentage = *payload.Discount
	default:
		return nil, fmt.Errorf("%w: response has neither percentage nor discount", ErrInvalidResponse)
	}

	return discount, nil
}
