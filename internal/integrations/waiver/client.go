// Package waiver клиент сервиса электронных расписок.
// Ошибки выдачи ссылки логируются и никогда не блокируют бронирование.
package waiver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrInvalidResponse возвращается при некорректном ответе сервиса расписок
	ErrInvalidResponse = errors.New("waiver: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("waiver: internal error")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SigningLink ссылка на подписание расписки, привязанная к бронированию
type SigningLink struct {
	BookingID int64  `json:"bookingId"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt"`
}

type createLinkRequest struct {
	BookingID int64   `json:"bookingId"`
	Email     *string `json:"email,omitempty"`
}

// Client клиент сервиса электронных расписок
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса расписок
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateSigningLink выпускает ссылку на подписание расписки для бронирования
func (c *Client) CreateSigningLink(ctx context.Context, bookingID int64, email *string) (*SigningLink, error) {
	url := fmt.Sprintf("%s/v1/waivers", c.baseURL)

	body, err := json.Marshal(createLinkRequest{
		BookingID: bookingID,
		Email:     email,
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

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var link SigningLink
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Issued waiver signing link for booking id=%d", bookingID)

	return &link, nil
}
