package create_booking

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID string
	CenterID  string
	Form      domain.BookingFormData
}

// FieldError ошибка одного поля формы
type FieldError = domain.FieldError

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
