package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// local@domain.tld: без пробелов, ровно одна "@", после нее есть "."
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail проверяет форму адреса email
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidDate проверяет календарную дату в формате YYYY-MM-DD (2024-02-30 недопустима)
func IsValidDate(date string) bool {
	if date == "" {
		return false
	}
	_, err := time.Parse(domain.DateFormat, date)
	return err == nil
}

// IsValidTime проверяет строгий 24-часовой формат HH:MM
func IsValidTime(tm string) bool {
	return types.TimeString(tm).Validate() == nil
}

// IsValidName имя не короче двух символов после обрезки пробелов
func IsValidName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= domain.MinNameLength
}

// IsWithinBusinessHours час в окне [05, 21); некорректный формат - false
func IsWithinBusinessHours(tm string) bool {
	return isWithinWindow(tm, domain.DefaultBusinessHoursStart, domain.DefaultBusinessHoursEnd)
}

// IsFutureDateTime true, если дата и время (в локальном поясе) строго позже текущего момента
func IsFutureDateTime(date, tm string) bool {
	return isFutureAt(date, tm, time.Now(), time.Local)
}

func isWithinWindow(tm string, from, to int) bool {
	hour, err := types.TimeString(tm).Hour()
	if err != nil {
		return false
	}
	return hour >= from && hour < to
}

func isFutureAt(date, tm string, now time.Time, loc *time.Location) bool {
	instant, ok := combine(date, tm, loc)
	if !ok {
		return false
	}
	return instant.After(now)
}

// combine собирает дату и время в один момент времени
func combine(date, tm string, loc *time.Location) (time.Time, bool) {
	day, err := time.ParseInLocation(domain.DateFormat, date, loc)
	if err != nil {
		return time.Time{}, false
	}
	hour, minute, err := types.TimeString(tm).Parts()
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), true
}
