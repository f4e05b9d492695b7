package domain

import "fmt"

// Center салон (арендатор), предлагающий услуги
type Center struct {
	ID          string
	Slug        string
	Name        string
	Description string
	Logo        string
	Services    []Service
}

// Service услуга одного центра, доступная для записи
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	PriceCents      int64 // в центах, чтобы избежать ошибок округления
	CenterID        string
}

// FindService ищет услугу центра по ID
func (c *Center) FindService(serviceID string) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].ID == serviceID {
			return &c.Services[i], true
		}
	}
	return nil, false
}

// FormatDuration "45 min", "1 hour", "2 hours", "1h 15min"
func (s *Service) FormatDuration() string {
	if s.DurationMinutes < 60 {
		return fmt.Sprintf("%d min", s.DurationMinutes)
	}

	hours := s.DurationMinutes / 60
	minutes := s.DurationMinutes % 60

	if minutes == 0 {
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}

	return fmt.Sprintf("%dh %dmin", hours, minutes)
}

// FormatPrice "$85.00"
func (s *Service) FormatPrice() string {
	return fmt.Sprintf("$%d.%02d", s.PriceCents/100, s.PriceCents%100)
}
