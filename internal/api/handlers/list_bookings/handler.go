package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings?centerId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centerID := r.URL.Query().Get("centerId")

	result, err := h.service.List(r.Context(), centerID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: center_id=%q, error=%v", centerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
