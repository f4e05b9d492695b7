package models

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

// BookingResponse бронирование в формате API
type BookingResponse struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	CenterID    string `json:"centerId"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	CreatedAt   string `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в API ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		ServiceID:   b.ServiceID,
		CenterID:    b.CenterID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		Date:        b.Date,
		Time:        b.Time,
		CreatedAt:   b.CreatedAt.UTC().Format(domain.CreatedAtFormat),
	}
}

// FromDomainBookings конвертирует список; пустой список сериализуется как []
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}
