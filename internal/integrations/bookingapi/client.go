package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент HTTP API бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitBooking отправляет форму на POST /api/bookings.
// Не-2xx ответ возвращается как *APIError с текстом сервера.
func (c *Client) SubmitBooking(ctx context.Context, serviceID, centerID string, form domain.BookingFormData) (*domain.Booking, error) {
	body, err := json.Marshal(CreateBookingRequest{
		ServiceID: serviceID,
		CenterID:  centerID,
		FormData:  fromForm(form),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	var resp CreateBookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", bytes.NewReader(body), domain.MsgBookingFailed, &resp); err != nil {
		return nil, err
	}

	if resp.Booking == nil {
		return nil, fmt.Errorf("%w: response without booking", ErrInvalidResponse)
	}

	booking, err := resp.Booking.toDomain()
	if err != nil {
		return nil, err
	}

	c.log.Info("Booking %s created for center=%s service=%s", booking.ID, centerID, serviceID)
	return booking, nil
}

// GetCenter получает центр по slug
func (c *Client) GetCenter(ctx context.Context, slug string) (*domain.Center, error) {
	var resp GetCenterResponse
	if err := c.do(ctx, http.MethodGet, "/api/centers/"+url.PathEscape(slug), nil, domain.MsgCenterNotFound, &resp); err != nil {
		return nil, err
	}

	if resp.Center == nil {
		return nil, fmt.Errorf("%w: response without center", ErrInvalidResponse)
	}

	return resp.Center.toDomain(), nil
}

// ListCenters получает все центры
func (c *Client) ListCenters(ctx context.Context) ([]*domain.Center, error) {
	var resp ListCentersResponse
	if err := c.do(ctx, http.MethodGet, "/api/centers", nil, domain.MsgUnexpectedError, &resp); err != nil {
		return nil, err
	}

	centers := make([]*domain.Center, 0, len(resp.Centers))
	for _, center := range resp.Centers {
		centers = append(centers, center.toDomain())
	}
	return centers, nil
}

// ListBookings получает бронирования с сервера; пустой centerID - все
func (c *Client) ListBookings(ctx context.Context, centerID string) ([]*domain.Booking, error) {
	path := "/api/bookings"
	if centerID != "" {
		path += "?" + url.Values{"centerId": []string{centerID}}.Encode()
	}

	var resp ListBookingsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, domain.MsgUnexpectedError, &resp); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		booking, err := b.toDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// do выполняет запрос и декодирует 2xx ответ в out.
// fallback используется как текст ошибки, если сервер не прислал поле "error".
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, fallback string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("%s %s - request failed: %v", method, path, err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp, fallback)
		c.log.Warn("%s %s - status %d: %s", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func decodeAPIError(resp *http.Response, fallback string) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var body ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}

	if body.Error != "" {
		apiErr.Message = body.Error
	}
	apiErr.Details = body.Errors
	return apiErr
}
