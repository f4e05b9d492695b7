package catalog

import "errors"

var (
	// ErrCenterNotFound возвращается, когда центр не найден
	ErrCenterNotFound = errors.New("catalog: center not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в центре
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrInvalidCatalog возвращается при ошибках чтения или проверки каталога
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")
)
