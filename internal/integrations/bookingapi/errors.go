package bookingapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrTransport возвращается, когда запрос не дошел до сервера или ответ не получен
	ErrTransport = errors.New("bookingapi client: transport error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrRejected сервер ответил не-2xx статусом
	ErrRejected = errors.New("bookingapi client: request rejected")

	// ErrNotFound сервер ответил 404
	ErrNotFound = errors.New("bookingapi client: not found")
)

// APIError структурированная ошибка сервера: {"error": "...", "errors": [...]}
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	return e.Message
}

// UserMessage текст для показа пользователю
func (e *APIError) UserMessage() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrRejected
}

// TransportError сетевой сбой: соединение, таймаут, отмена контекста
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v: %v", ErrTransport, e.Err)
}

func (e *TransportError) UserMessage() string {
	return domain.MsgNetworkError
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}
