package booking

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// MemoryStore хранит бронирования в памяти процесса
type MemoryStore struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: make([]*domain.Booking, 0)}
}

// Append добавляет копию бронирования в конец списка
func (s *MemoryStore) Append(_ context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *booking
	s.bookings = append(s.bookings, &cp)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]*domain.Booking, error) {
	return s.find(domain.BookingsFilter{}), nil
}

func (s *MemoryStore) ListByCenter(_ context.Context, centerID string) ([]*domain.Booking, error) {
	return s.find(domain.BookingsFilter{CenterID: &centerID}), nil
}

func (s *MemoryStore) ListByService(_ context.Context, serviceID string) ([]*domain.Booking, error) {
	return s.find(domain.BookingsFilter{ServiceID: &serviceID}), nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make([]*domain.Booking, 0)
	return nil
}

func (s *MemoryStore) find(filter domain.BookingsFilter) []*domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if filter.Matches(b) {
			cp := *b
			result = append(result, &cp)
		}
	}
	return result
}
