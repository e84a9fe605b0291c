package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент сервиса push-уведомлений.
// Уведомления отправляются по принципу fire-and-forget: вызывающая
// сторона логирует ошибку, но не откатывает бизнес-операцию.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет уведомление пользователю
func (c *Client) Send(ctx context.Context, n Notification) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
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

// SendToCustomer отправляет уведомление клиенту, проглатывая ошибку.
// Недоступность сервиса уведомлений не должна ломать бронирование.
func (c *Client) SendToCustomer(ctx context.Context, customerID int64, title, message string) {
	err := c.Send(ctx, Notification{UserID: customerID, Title: title, Message: message})
	if err != nil {
		c.log.Error("Failed to notify customer_id=%d: %v", customerID, err)
		return
	}
	c.log.Info("Notification sent to customer_id=%d", customerID)
}

// SendToGroomer отправляет уведомление исполнителю, проглатывая ошибку
func (c *Client) SendToGroomer(ctx context.Context, groomerID int64, title, message string) {
	err := c.Send(ctx, Notification{UserID: groomerID, Title: title, Message: message})
	if err != nil {
		c.log.Error("Failed to notify groomer_id=%d: %v", groomerID, err)
		return
	}
	c.log.Info("Notification sent to groomer_id=%d", groomerID)
}
