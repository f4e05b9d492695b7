package bookingapi

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// CreateBookingRequest тело POST /api/bookings
type CreateBookingRequest struct {
	ServiceID string   `json:"serviceId"`
	CenterID  string   `json:"centerId"`
	FormData  FormData `json:"formData"`
}

type FormData struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type CreateBookingResponse struct {
	Booking *Booking `json:"booking"`
}

type ListBookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

type GetCenterResponse struct {
	Center *Center `json:"center"`
}

type ListCentersResponse struct {
	Centers []Center `json:"centers"`
}

// ErrorResponse модель ошибки от сервиса
type ErrorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

type Booking struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	CenterID    string `json:"centerId"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	CreatedAt   string `json:"createdAt"`
}

type Center struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	Services    []Service `json:"services"`
}

type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Price       int64  `json:"price"`
	CenterID    string `json:"centerId"`
}

func fromForm(form domain.BookingFormData) FormData {
	return FormData{
		ClientName:  form.ClientName,
		ClientEmail: form.ClientEmail,
		Date:        form.Date,
		Time:        form.Time,
	}
}

func (b Booking) toDomain() (*domain.Booking, error) {
	if b.ID == "" {
		return nil, fmt.Errorf("%w: booking without id", ErrInvalidResponse)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: booking %s: createdAt %q: %v", ErrInvalidResponse, b.ID, b.CreatedAt, err)
	}

	return &domain.Booking{
		ID:          b.ID,
		ServiceID:   b.ServiceID,
		CenterID:    b.CenterID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		Date:        b.Date,
		Time:        b.Time,
		CreatedAt:   createdAt,
	}, nil
}

func (c Center) toDomain() *domain.Center {
	services := make([]domain.Service, 0, len(c.Services))
	for _, s := range c.Services {
		services = append(services, domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.Duration,
			PriceCents:      s.Price,
			CenterID:        s.CenterID,
		})
	}

	return &domain.Center{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Logo:        c.Logo,
		Services:    services,
	}
}
