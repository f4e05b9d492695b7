package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Append(ctx context.Context, booking *domain.Booking) error
}

// CatalogRepository интерфейс каталога центров
type CatalogRepository interface {
	GetService(centerID, serviceID string) (*domain.Service, error)
}

// FormValidator проверка формы бронирования
type FormValidator interface {
	Validate(form domain.BookingFormData) domain.ValidationResult
}

// Metrics счетчики бронирований
type Metrics interface {
	IncBookingCreated(centerID string)
	IncValidationFailure(field string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
