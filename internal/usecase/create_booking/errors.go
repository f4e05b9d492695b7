package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrValidation возвращается, когда форма не прошла проверку
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrCenterNotFound возвращается, когда центр не найден
	ErrCenterNotFound = errors.New("create_booking: center not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в центре
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибки полей формы; errors.Is(err, ErrValidation) == true
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Messages тексты ошибок в порядке проверки
func (e *ValidationError) Messages() []string {
	return domain.ValidationResult{Errors: e.Errors}.Messages()
}
