package get_center

import "github.com/m04kA/SMC-BeautyBooking/internal/service/centers/models"

// GetCenterResponse HTTP response model
type GetCenterResponse struct {
	Center *models.CenterResponse `json:"center"`
}
