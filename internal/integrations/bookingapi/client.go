package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// Client клиент HTTP API бронирований
// Реализует шлюз мастера, поэтому консольный мастер отправляет заявки на удаленный сервер
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateBooking отправляет черновик в POST /api/bookings
func (c *Client) CreateBooking(ctx context.Context, draft *domain.Draft) (*domain.Booking, error) {
	c.log.Info("Submitting booking for company=%s, date=%s, slot=%s",
		draft.CompanyName, draft.Date.Format(domain.DateFormat), draft.TimeSlot)

	var resp createBookingResponse
	status, err := c.do(ctx, http.MethodPost, "/api/bookings", fromDraft(draft), &resp)
	if err != nil {
		return nil, err
	}

	if status != http.StatusCreated || !resp.Success || resp.Booking == nil {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, status, resp.Message)
	}

	booking, err := resp.Booking.ToDomain()
	if err != nil {
		return nil, err
	}

	c.log.Info("Booking accepted: booking_id=%s", booking.ID)
	return booking, nil
}

// ListBookings получает все бронирования
func (c *Client) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	var resp listBookingsResponse
	status, err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &resp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK || !resp.Success {
		return nil, fmt.Errorf("%w: status %d", ErrRejected, status)
	}

	bookings := make([]*domain.Booking, 0, len(resp.Bookings))
	for i := range resp.Bookings {
		b, err := resp.Bookings[i].ToDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var resp getBookingResponse
	status, err := c.do(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(id), nil, &resp)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		return nil, ErrBookingNotFound
	case status != http.StatusOK || !resp.Success || resp.Booking == nil:
		return nil, fmt.Errorf("%w: status %d", ErrRejected, status)
	}

	return resp.Booking.ToDomain()
}

// ValidatePromo проверяет промокод
func (c *Client) ValidatePromo(ctx context.Context, code string) (*PromoResult, error) {
	var resp PromoResult
	status, err := c.do(ctx, http.MethodPost, "/api/promo/validate", map[string]string{"code": code}, &resp)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, status, resp.Message)
	}
	return &resp, nil
}

// do выполняет запрос и декодирует JSON тело ответа в out независимо от статуса
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s %s failed: %v", method, path, err)
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	return resp.StatusCode, nil
}
