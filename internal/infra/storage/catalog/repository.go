package catalog

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

//go:embed default_catalog.toml
var defaultCatalog string

// Repository каталог центров и их услуг, неизменяемый после загрузки
type Repository struct {
	centers []domain.Center
	bySlug  map[string]int
	byID    map[string]int
}

// NewDefault загружает встроенный каталог
func NewDefault() (*Repository, error) {
	return Parse(defaultCatalog)
}

// Load читает каталог из TOML файла; пустой путь - встроенный каталог
func Load(path string) (*Repository, error) {
	if path == "" {
		return NewDefault()
	}

	var file fileCatalog
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidCatalog, path, err)
	}

	return newRepository(file)
}

// Parse разбирает каталог из TOML строки
func Parse(data string) (*Repository, error) {
	var file fileCatalog
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	return newRepository(file)
}

func newRepository(file fileCatalog) (*Repository, error) {
	r := &Repository{
		centers: make([]domain.Center, 0, len(file.Centers)),
		bySlug:  make(map[string]int, len(file.Centers)),
		byID:    make(map[string]int, len(file.Centers)),
	}

	for _, fc := range file.Centers {
		center := fc.toDomain()
		if err := validateCenter(center); err != nil {
			return nil, err
		}
		if _, ok := r.bySlug[center.Slug]; ok {
			return nil, fmt.Errorf("%w: duplicate slug %q", ErrInvalidCatalog, center.Slug)
		}
		if _, ok := r.byID[center.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate center id %q", ErrInvalidCatalog, center.ID)
		}

		r.bySlug[center.Slug] = len(r.centers)
		r.byID[center.ID] = len(r.centers)
		r.centers = append(r.centers, center)
	}

	return r, nil
}

func validateCenter(c domain.Center) error {
	if c.ID == "" || c.Slug == "" || c.Name == "" {
		return fmt.Errorf("%w: center requires id, slug and name", ErrInvalidCatalog)
	}

	seen := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		switch {
		case s.ID == "" || s.Name == "":
			return fmt.Errorf("%w: center %s: service requires id and name", ErrInvalidCatalog, c.ID)
		case s.DurationMinutes <= 0:
			return fmt.Errorf("%w: service %s: duration must be positive", ErrInvalidCatalog, s.ID)
		case s.PriceCents < 0:
			return fmt.Errorf("%w: service %s: price must not be negative", ErrInvalidCatalog, s.ID)
		case s.CenterID != c.ID:
			return fmt.Errorf("%w: service %s belongs to %s, listed under %s", ErrInvalidCatalog, s.ID, s.CenterID, c.ID)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: center %s: duplicate service id %q", ErrInvalidCatalog, c.ID, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	return nil
}

// GetBySlug возвращает копию центра по slug
func (r *Repository) GetBySlug(slug string) (*domain.Center, error) {
	idx, ok := r.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: slug %q", ErrCenterNotFound, slug)
	}
	return r.copyAt(idx), nil
}

// GetByID возвращает копию центра по ID
func (r *Repository) GetByID(id string) (*domain.Center, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", ErrCenterNotFound, id)
	}
	return r.copyAt(idx), nil
}

// GetService возвращает услугу центра
func (r *Repository) GetService(centerID, serviceID string) (*domain.Service, error) {
	center, err := r.GetByID(centerID)
	if err != nil {
		return nil, err
	}

	svc, ok := center.FindService(serviceID)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrServiceNotFound, serviceID, centerID)
	}
	return svc, nil
}

// List все центры в порядке каталога
func (r *Repository) List() []*domain.Center {
	result := make([]*domain.Center, 0, len(r.centers))
	for i := range r.centers {
		result = append(result, r.copyAt(i))
	}
	return result
}

// Slugs slug всех центров в порядке каталога
func (r *Repository) Slugs() []string {
	slugs := make([]string, 0, len(r.centers))
	for _, c := range r.centers {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

func (r *Repository) copyAt(idx int) *domain.Center {
	c := r.centers[idx]
	c.Services = append([]domain.Service(nil), c.Services...)
	return &c
}
