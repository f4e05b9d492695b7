package models

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

// CenterResponse центр в формате API
type CenterResponse struct {
	ID          string            `json:"id"`
	Slug        string            `json:"slug"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Logo        string            `json:"logo"`
	Services    []ServiceResponse `json:"services"`
}

// ServiceResponse услуга; duration в минутах, price в центах
type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Price       int64  `json:"price"`
	CenterID    string `json:"centerId"`
}

// FromDomainCenter конвертирует domain модель в API ответ
func FromDomainCenter(c *domain.Center) *CenterResponse {
	services := make([]ServiceResponse, 0, len(c.Services))
	for _, s := range c.Services {
		services = append(services, ServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Duration:    s.DurationMinutes,
			Price:       s.PriceCents,
			CenterID:    s.CenterID,
		})
	}

	return &CenterResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Logo:        c.Logo,
		Services:    services,
	}
}
