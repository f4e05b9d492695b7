package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidTimeString возвращается, когда строка не в формате HH:MM (24 часа)
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrInvalidPeriod возвращается при некорректном значении AM/PM или часа в 12-часовом формате
	ErrInvalidPeriod = errors.New("invalid 12-hour time")
)

// Строгий 24-часовой формат: две цифры часа 00-23, две цифры минут 00-59
var timeStringRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

const (
	PeriodAM = "AM"
	PeriodPM = "PM"
)

// TimeString время дня в формате "HH:MM"
type TimeString string

// NewTimeStringFromString валидирует строку и возвращает TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate проверяет строгий формат HH:MM
func (t TimeString) Validate() error {
	if !timeStringRegex.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

func (t TimeString) String() string {
	return string(t)
}

func (t TimeString) IsZero() bool {
	return t == ""
}

// Parts возвращает часы и минуты
func (t TimeString) Parts() (hour, minute int, err error) {
	if err := t.Validate(); err != nil {
		return 0, 0, err
	}
	s := string(t)
	hour, _ = strconv.Atoi(s[0:2])
	minute, _ = strconv.Atoi(s[3:5])
	return hour, minute, nil
}

// Hour возвращает часовую компоненту
func (t TimeString) Hour() (int, error) {
	hour, _, err := t.Parts()
	return hour, err
}

// To12Hour форматирует время для отображения: "14:05" -> "2:05 PM", "00:30" -> "12:30 AM"
func (t TimeString) To12Hour() (string, error) {
	hour, minute, err := t.Parts()
	if err != nil {
		return "", err
	}

	period := PeriodAM
	if hour >= 12 {
		period = PeriodPM
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period), nil
}

// FromTwelveHour собирает TimeString из 12-часового представления (hour12 в диапазоне 1-12)
func FromTwelveHour(hour12, minute int, period string) (TimeString, error) {
	if hour12 < 1 || hour12 > 12 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %d:%02d %s", ErrInvalidPeriod, hour12, minute, period)
	}

	hour := hour12 % 12
	switch period {
	case PeriodAM:
	case PeriodPM:
		hour += 12
	default:
		return "", fmt.Errorf("%w: period %q", ErrInvalidPeriod, period)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}
