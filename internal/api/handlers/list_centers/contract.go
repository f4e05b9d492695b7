package list_centers

import "github.com/m04kA/SMC-BeautyBooking/internal/service/centers/models"

type CenterService interface {
	List() []*models.CenterResponse
}
