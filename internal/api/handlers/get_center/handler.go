package get_center

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/centers"
)

type Handler struct {
	service CenterService
	logger  Logger
}

func NewHandler(service CenterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/centers/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	center, err := h.service.GetBySlug(slug)
	if err != nil {
		switch {
		case errors.Is(err, centers.ErrCenterNotFound):
			h.logger.Warn("GET /centers/{slug} - Center not found: slug=%s", slug)
			handlers.RespondNotFound(w, domain.MsgCenterNotFound)

		default:
			h.logger.Error("GET /centers/{slug} - Failed to get center: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, GetCenterResponse{Center: center})
}
