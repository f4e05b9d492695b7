package catalog

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

type fileCatalog struct {
	Centers []fileCenter `toml:"centers"`
}

type fileCenter struct {
	ID          string        `toml:"id"`
	Slug        string        `toml:"slug"`
	Name        string        `toml:"name"`
	Description string        `toml:"description"`
	Logo        string        `toml:"logo"`
	Services    []fileService `toml:"services"`
}

type fileService struct {
	ID              string `toml:"id"`
	Name            string `toml:"name"`
	Description     string `toml:"description"`
	DurationMinutes int    `toml:"duration_minutes"`
	PriceCents      int64  `toml:"price_cents"`
	// CenterID можно не указывать, по умолчанию берется ID родительского центра
	CenterID string `toml:"center_id"`
}

func (c fileCenter) toDomain() domain.Center {
	services := make([]domain.Service, 0, len(c.Services))
	for _, s := range c.Services {
		centerID := s.CenterID
		if centerID == "" {
			centerID = c.ID
		}
		services = append(services, domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			PriceCents:      s.PriceCents,
			CenterID:        centerID,
		})
	}

	return domain.Center{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Logo:        c.Logo,
		Services:    services,
	}
}
