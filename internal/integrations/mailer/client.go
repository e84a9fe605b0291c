package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент почтового сервиса.
// Как и уведомления, письма отправляются fire-and-forget.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет письмо-подтверждение, проглатывая ошибку.
// Недоступность почтового сервиса не должна ломать бронирование.
func (c *Client) SendBookingConfirmation(ctx context.Context, confirmation BookingConfirmation) {
	err := c.send(ctx, confirmation)
	if err != nil {
		c.log.Error("Failed to send confirmation email for user_id=%d reference=%s: %v",
			confirmation.UserID, confirmation.Reference, err)
		return
	}
	c.log.Info("Confirmation email sent for user_id=%d reference=%s", confirmation.UserID, confirmation.Reference)
}

func (c *Client) send(ctx context.Context, confirmation BookingConfirmation) error {
	url := fmt.Sprintf("%s/internal/emails/booking-confirmation", c.baseURL)

	payload, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal confirmation: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
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
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
