package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// CreatedAtFormat ISO 8601 с миллисекундами, UTC
	CreatedAtFormat = "2006-01-02T15:04:05.000Z07:00"
)

// Рабочие часы по умолчанию: [05:00, 21:00)
const (
	DefaultBusinessHoursStart = 5
	DefaultBusinessHoursEnd   = 21

	MinNameLength = 2
)

// Сообщения валидации, которые показываются у полей формы
const (
	MsgRequired             = "This field is required"
	MsgInvalidEmail         = "Please enter a valid email address"
	MsgInvalidDate          = "Please enter a valid date"
	MsgInvalidTime          = "Please enter a valid time"
	MsgPastDate             = "Date and time must be in the future"
	MsgInvalidName          = "Name must be at least 2 characters long"
	MsgOutsideBusinessHours = "Please select a time between 5:00 AM and 9:00 PM"

	// MsgOutsideBusinessHoursFormat то же сообщение для произвольного окна (время в 12-часовом формате)
	MsgOutsideBusinessHoursFormat = "Please select a time between %s and %s"
)

// Сообщения об ошибках API для пользователя
const (
	MsgCenterNotFound   = "Beauty center not found"
	MsgServiceNotFound  = "Service not found"
	MsgInvalidRequest   = "Invalid request data"
	MsgBookingFailed    = "Failed to create booking. Please try again."
	MsgNetworkError     = "Network error. Please check your connection."
	MsgValidationFailed = "Validation failed"
	MsgInternalError    = "Internal server error"
	MsgUnexpectedError  = "An unexpected error occurred. Please try again."
)

// BookingsStorageKey ключ массива бронирований в key-value хранилищах
const BookingsStorageKey = "beauty-center-bookings"
