package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает бронирования в порядке добавления; пустой centerID - все центры
func (s *Service) List(ctx context.Context, centerID string) (*models.BookingListResponse, error) {
	var (
		bookings []*domain.Booking
		err      error
	)

	if centerID == "" {
		bookings, err = s.bookingRepo.List(ctx)
	} else {
		bookings, err = s.bookingRepo.ListByCenter(ctx, centerID)
	}
	if err != nil {
		s.logger.Error("ListBookings: repository error for center=%q: %v", centerID, err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: found %d bookings for center=%q", len(bookings), centerID)
	return models.FromDomainBookings(bookings), nil
}
