package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент платёжного процессора.
// Платёж либо создаётся до транзакции бронирования (оплата онлайн), либо
// вообще не создаётся (оплата на месте). Если транзакция бронирования
// провалилась после успешного платежа, платёж возвращается через RefundCharge —
// компенсирующее действие, а не двухфазный коммит.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного процессора
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCharge создает платёж на сумму с метаданными бронирования
func (c *Client) CreateCharge(ctx context.Context, amount float64, metadata map[string]string) (*Charge, error) {
	url := fmt.Sprintf("%s/v1/charges", c.baseURL)

	body, err := json.Marshal(createChargeRequest{
		Amount:   amount,
		Currency: "usd",
		Metadata: metadata,
	})
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

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return nil, ErrChargeDeclined
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var charge Charge
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Created charge id=%s amount=%.2f", charge.ID, charge.Amount)

	return &charge, nil
}

// RefundCharge возвращает платёж целиком.
// Вызывается, когда бронирование не удалось создать после успешной оплаты.
func (c *Client) RefundCharge(ctx context.Context, chargeID string) error {
	url := fmt.Sprintf("%s/v1/charges/%s/refund", c.baseURL, chargeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.log.Info("Refunded charge id=%s", chargeID)
		return nil
	case http.StatusNotFound:
		return ErrChargeNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
