package bookings

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByCenter(ctx context.Context, centerID string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
