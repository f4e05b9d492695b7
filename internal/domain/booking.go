package domain

import "time"

// Field название поля формы бронирования
type Field string

const (
	FieldClientName  Field = "clientName"
	FieldClientEmail Field = "clientEmail"
	FieldDate        Field = "date"
	FieldTime        Field = "time"
)

// AsyncStatus статус асинхронной операции на стороне клиента
type AsyncStatus string

const (
	StatusIdle    AsyncStatus = "idle"
	StatusLoading AsyncStatus = "loading"
	StatusSuccess AsyncStatus = "success"
	StatusError   AsyncStatus = "error"
)

// Booking подтвержденная запись клиента в центр
type Booking struct {
	ID          string
	ServiceID   string
	CenterID    string
	ClientName  string
	ClientEmail string
	Date        string // YYYY-MM-DD, as submitted
	Time        string // HH:MM, as submitted
	CreatedAt   time.Time
}

// BookingFormData ввод пользователя как есть; корректность решает только валидатор формы
type BookingFormData struct {
	ClientName  string
	ClientEmail string
	Date        string
	Time        string
}

// FieldError ошибка валидации, привязанная к одному полю
type FieldError struct {
	Field   Field
	Message string
}

// ValidationResult результат валидации формы
type ValidationResult struct {
	IsValid bool
	Errors  []FieldError
}

// Messages возвращает тексты ошибок в порядке их появления
func (r ValidationResult) Messages() []string {
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.Message)
	}
	return messages
}

// NewBookingFromForm копирует проверенную форму в бронирование без изменений
func NewBookingFromForm(id, serviceID, centerID string, form BookingFormData, createdAt time.Time) *Booking {
	return &Booking{
		ID:          id,
		ServiceID:   serviceID,
		CenterID:    centerID,
		ClientName:  form.ClientName,
		ClientEmail: form.ClientEmail,
		Date:        form.Date,
		Time:        form.Time,
		CreatedAt:   createdAt,
	}
}

// BookingsFilter фильтр списка бронирований (nil - без ограничения)
type BookingsFilter struct {
	CenterID  *string
	ServiceID *string
}

// Matches проверяет, подходит ли бронирование под фильтр
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.CenterID != nil && b.CenterID != *f.CenterID {
		return false
	}
	if f.ServiceID != nil && b.ServiceID != *f.ServiceID {
		return false
	}
	return true
}
