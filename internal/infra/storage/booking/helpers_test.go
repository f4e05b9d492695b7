package booking

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var testCreatedAt = time.Date(2026, time.May, 20, 9, 30, 15, 123000000, time.UTC)

func newTestBooking(id, centerID, serviceID string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ServiceID:   serviceID,
		CenterID:    centerID,
		ClientName:  "John Doe",
		ClientEmail: "john@example.com",
		Date:        "2026-06-10",
		Time:        "14:00",
		CreatedAt:   testCreatedAt,
	}
}
