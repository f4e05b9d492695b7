package get_center

import "github.com/m04kA/SMC-BeautyBooking/internal/service/centers/models"

type CenterService interface {
	GetBySlug(slug string) (*models.CenterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
