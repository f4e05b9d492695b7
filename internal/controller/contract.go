package controller

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// BookingSubmitter сетевой коллаборатор: создает бронирование на сервере
type BookingSubmitter interface {
	SubmitBooking(ctx context.Context, serviceID, centerID string, form domain.BookingFormData) (*domain.Booking, error)
}

// BookingStore коллаборатор хранения: подтвержденные бронирования только дописываются
type BookingStore interface {
	Append(ctx context.Context, booking *domain.Booking) error
}

// CenterFetcher загрузка центра по slug
type CenterFetcher interface {
	GetCenter(ctx context.Context, slug string) (*domain.Center, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
