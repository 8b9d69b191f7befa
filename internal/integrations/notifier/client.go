package notifier

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

// Client клиент сервиса уведомлений.
//
// Доставка уведомлений - fire-and-forget: отправка выполняется в отдельной
// горутине со своим таймаутом, ошибки только логируются и никогда не влияют
// на результат операции бронирования.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
		log:     log,
	}
}

// NotifyBookingCreated асинхронно отправляет событие о создании бронирования
func (c *Client) NotifyBookingCreated(event BookingEvent) {
	event.Type = EventBookingCreated
	c.dispatch(event)
}

// NotifyBookingCancelled асинхронно отправляет событие об отмене бронирования
func (c *Client) NotifyBookingCancelled(event BookingEvent) {
	event.Type = EventBookingCancelled
	c.dispatch(event)
}

func (c *Client) dispatch(event BookingEvent) {
	go func() {
		// Свой контекст: запрос, породивший событие, к этому моменту уже завершён
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		if err := c.send(ctx, event); err != nil {
			c.log.Error("notifier: failed to deliver %s for booking id=%d: %v",
				event.Type, event.BookingID, err)
			return
		}

		c.log.Info("notifier: delivered %s for booking id=%d", event.Type, event.BookingID)
	}()
}

func (c *Client) send(ctx context.Context, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	url := fmt.Sprintf("%s/internal/notifications/events", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	return nil
}

// NopClient заглушка, используемая при выключенных уведомлениях
type NopClient struct{}

// NotifyBookingCreated ничего не делает
func (NopClient) NotifyBookingCreated(BookingEvent) {}

// NotifyBookingCancelled ничего не делает
func (NopClient) NotifyBookingCancelled(BookingEvent) {}
