package booking

import "errors"

var (
	// ErrSave возвращается, когда бронирование не удалось записать в хранилище
	ErrSave = errors.New("booking.storage: failed to save booking to storage")

	// ErrLoad возвращается при ошибке чтения хранилища (не при поврежденных данных)
	ErrLoad = errors.New("booking.storage: failed to load bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
