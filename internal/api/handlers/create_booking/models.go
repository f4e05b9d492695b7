package create_booking

import (
	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
)

var validate = validator.New()

// CreateBookingRequest HTTP request model.
// Указатели: проверяется наличие ключей, содержимое формы проверяет FormValidator.
type CreateBookingRequest struct {
	ServiceID *string   `json:"serviceId" validate:"required"`
	CenterID  *string   `json:"centerId" validate:"required"`
	FormData  *FormData `json:"formData" validate:"required"`
}

// FormData поля формы бронирования как их ввел пользователь
type FormData struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking *models.BookingResponse `json:"booking"`
}

// Validate проверяет структуру запроса
func (r *CreateBookingRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceID: *r.ServiceID,
		CenterID:  *r.CenterID,
		Form: domain.BookingFormData{
			ClientName:  r.FormData.ClientName,
			ClientEmail: r.FormData.ClientEmail,
			Date:        r.FormData.Date,
			Time:        r.FormData.Time,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{Booking: models.FromDomainBooking(resp.Booking)}
}
