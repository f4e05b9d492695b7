package controller

import (
	"errors"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrClosed контроллер закрыт, новые запросы не принимаются
	ErrClosed = errors.New("controller: closed")

	// ErrSuperseded результат запроса отброшен: его заменил более поздний вызов, Reset или Close
	ErrSuperseded = errors.New("controller: request superseded")

	// ErrPersist бронирование подтверждено сервером, но не записано в хранилище
	ErrPersist = errors.New("controller: failed to persist booking")
)

// UserMessager ошибка, которая знает свой текст для пользователя
type UserMessager interface {
	UserMessage() string
}

// FormatError превращает любое значение ошибки в текст для пользователя:
// ошибка с UserMessage - этот текст, обычная ошибка - Error(), строка - она сама,
// все остальное (и пустой текст) - общее сообщение.
func FormatError(v interface{}) string {
	var msg string

	switch e := v.(type) {
	case error:
		var um UserMessager
		if errors.As(e, &um) {
			msg = um.UserMessage()
		}
		if msg == "" {
			msg = e.Error()
		}
	case string:
		msg = e
	}

	if msg == "" {
		return domain.MsgUnexpectedError
	}
	return msg
}
