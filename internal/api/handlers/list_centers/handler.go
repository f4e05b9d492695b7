package list_centers

import (
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/centers/models"
)

// ListCentersResponse HTTP response model
type ListCentersResponse struct {
	Centers []*models.CenterResponse `json:"centers"`
}

type Handler struct {
	service CenterService
}

func NewHandler(service CenterService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/centers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ListCentersResponse{Centers: h.service.List()})
}
