package centers

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/centers/models"
)

// Service сервис чтения каталога центров
type Service struct {
	catalog CatalogRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса центров
func NewService(catalog CatalogRepository, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// GetBySlug получает центр со всеми услугами
func (s *Service) GetBySlug(slug string) (*models.CenterResponse, error) {
	center, err := s.catalog.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, catalog.ErrCenterNotFound) {
			s.logger.Warn("GetCenter: center slug=%s not found", slug)
			return nil, ErrCenterNotFound
		}
		s.logger.Error("GetCenter: catalog error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetCenter - catalog error: %v", ErrInternal, err)
	}

	return models.FromDomainCenter(center), nil
}

// List все центры в порядке каталога
func (s *Service) List() []*models.CenterResponse {
	centers := s.catalog.List()

	result := make([]*models.CenterResponse, 0, len(centers))
	for _, c := range centers {
		result = append(result, models.FromDomainCenter(c))
	}
	return result
}
