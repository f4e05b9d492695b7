package centers

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

// CatalogRepository интерфейс каталога центров
type CatalogRepository interface {
	GetBySlug(slug string) (*domain.Center, error)
	List() []*domain.Center
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
