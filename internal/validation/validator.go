package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// Validator проверяет форму бронирования.
// Все правила применяются независимо и накапливают ошибки в фиксированном порядке:
// имя, email, дата, время, затем проверка "дата и время в будущем".
type Validator struct {
	businessHours bool
	openHour      int
	closeHour     int
	hoursMessage  string
	now           func() time.Time
	location      *time.Location
}

// Option настраивает Validator
type Option func(*Validator)

// WithBusinessHours включает или выключает проверку рабочих часов
func WithBusinessHours(enabled bool) Option {
	return func(v *Validator) {
		v.businessHours = enabled
	}
}

// WithBusinessWindow задает окно рабочих часов [from, to)
func WithBusinessWindow(from, to int) Option {
	return func(v *Validator) {
		v.openHour = from
		v.closeHour = to
	}
}

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// WithLocation задает часовой пояс, в котором интерпретируются дата и время формы
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		v.location = loc
	}
}

// New создает валидатор; по умолчанию проверка рабочих часов включена
func New(opts ...Option) *Validator {
	v := &Validator{
		businessHours: true,
		openHour:      domain.DefaultBusinessHoursStart,
		closeHour:     domain.DefaultBusinessHoursEnd,
		now:           time.Now,
		location:      time.Local,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.hoursMessage = businessHoursMessage(v.openHour, v.closeHour)
	return v
}

// businessHoursMessage текст ошибки для окна [from, to); для окна по умолчанию
// совпадает с domain.MsgOutsideBusinessHours
func businessHoursMessage(from, to int) string {
	return fmt.Sprintf(domain.MsgOutsideBusinessHoursFormat, hourLabel(from), hourLabel(to))
}

// hourLabel 5 -> "5:00 AM", 21 -> "9:00 PM", 24 -> "12:00 AM"
func hourLabel(hour int) string {
	ts := types.TimeString(fmt.Sprintf("%02d:00", hour%24))
	label, err := ts.To12Hour()
	if err != nil {
		return ts.String()
	}
	return label
}

var defaultValidator = New()

// ValidateBookingForm проверяет форму правилами по умолчанию
func ValidateBookingForm(form domain.BookingFormData) domain.ValidationResult {
	return defaultValidator.Validate(form)
}

// Validate никогда не паникует: некорректные значения возвращаются как ошибки полей
func (v *Validator) Validate(form domain.BookingFormData) domain.ValidationResult {
	errs := make([]domain.FieldError, 0)

	add := func(field domain.Field, message string) {
		errs = append(errs, domain.FieldError{Field: field, Message: message})
	}

	switch {
	case isBlank(form.ClientName):
		add(domain.FieldClientName, domain.MsgRequired)
	case !IsValidName(form.ClientName):
		add(domain.FieldClientName, domain.MsgInvalidName)
	}

	switch {
	case isBlank(form.ClientEmail):
		add(domain.FieldClientEmail, domain.MsgRequired)
	case !IsValidEmail(form.ClientEmail):
		add(domain.FieldClientEmail, domain.MsgInvalidEmail)
	}

	switch {
	case isBlank(form.Date):
		add(domain.FieldDate, domain.MsgRequired)
	case !IsValidDate(form.Date):
		add(domain.FieldDate, domain.MsgInvalidDate)
	}

	switch {
	case isBlank(form.Time):
		add(domain.FieldTime, domain.MsgRequired)
	case !IsValidTime(form.Time):
		add(domain.FieldTime, domain.MsgInvalidTime)
	case v.businessHours && !isWithinWindow(form.Time, v.openHour, v.closeHour):
		add(domain.FieldTime, v.hoursMessage)
	}

	// Только если дата и время корректны; не зависит от проверки рабочих часов
	if IsValidDate(form.Date) && IsValidTime(form.Time) &&
		!isFutureAt(form.Date, form.Time, v.now(), v.location) {
		add(domain.FieldDate, domain.MsgPastDate)
	}

	return domain.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// IsFutureDateTime сравнивает дату и время формы с текущим временем валидатора
func (v *Validator) IsFutureDateTime(date, tm string) bool {
	return isFutureAt(date, tm, v.now(), v.location)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
