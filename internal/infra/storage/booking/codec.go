package booking

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// storedBooking формат записи в key-value хранилищах.
// Указатели нужны, чтобы отличить отсутствующее поле от пустой строки.
type storedBooking struct {
	ID          *string `json:"id"`
	ServiceID   *string `json:"serviceId"`
	CenterID    *string `json:"centerId"`
	ClientName  *string `json:"clientName"`
	ClientEmail *string `json:"clientEmail"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	CreatedAt   *string `json:"createdAt"`
}

func toStored(b *domain.Booking) storedBooking {
	createdAt := b.CreatedAt.UTC().Format(domain.CreatedAtFormat)
	return storedBooking{
		ID:          &b.ID,
		ServiceID:   &b.ServiceID,
		CenterID:    &b.CenterID,
		ClientName:  &b.ClientName,
		ClientEmail: &b.ClientEmail,
		Date:        &b.Date,
		Time:        &b.Time,
		CreatedAt:   &createdAt,
	}
}

func (s storedBooking) toDomain() (*domain.Booking, bool) {
	if s.ID == nil || s.ServiceID == nil || s.CenterID == nil || s.ClientName == nil ||
		s.ClientEmail == nil || s.Date == nil || s.Time == nil || s.CreatedAt == nil {
		return nil, false
	}

	createdAt, err := time.Parse(time.RFC3339Nano, *s.CreatedAt)
	if err != nil {
		return nil, false
	}

	return &domain.Booking{
		ID:          *s.ID,
		ServiceID:   *s.ServiceID,
		CenterID:    *s.CenterID,
		ClientName:  *s.ClientName,
		ClientEmail: *s.ClientEmail,
		Date:        *s.Date,
		Time:        *s.Time,
		CreatedAt:   createdAt,
	}, true
}

// decodeBookings читает JSON массив бронирований.
// Поврежденный JSON или не-массив дают пустой список, некорректные элементы пропускаются.
func decodeBookings(data []byte) []*domain.Booking {
	bookings := make([]*domain.Booking, 0)
	if len(data) == 0 {
		return bookings
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return bookings
	}

	for _, item := range items {
		var stored storedBooking
		if err := json.Unmarshal(item, &stored); err != nil {
			continue
		}
		if b, ok := stored.toDomain(); ok {
			bookings = append(bookings, b)
		}
	}

	return bookings
}

func encodeBookings(bookings []*domain.Booking) ([]byte, error) {
	stored := make([]storedBooking, 0, len(bookings))
	for _, b := range bookings {
		stored = append(stored, toStored(b))
	}
	return json.Marshal(stored)
}

func filterBookings(bookings []*domain.Booking, filter domain.BookingsFilter) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Matches(b) {
			result = append(result, b)
		}
	}
	return result
}
