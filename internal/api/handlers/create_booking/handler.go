package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, domain.MsgInvalidRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /bookings - Invalid request data: %v", err)
		handlers.RespondBadRequest(w, domain.MsgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var vErr *createBooking.ValidationError

		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /bookings - Validation failed: center_id=%s, errors=%v", *req.CenterID, vErr.Messages())
			handlers.RespondValidationError(w, vErr.Messages())

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, domain.MsgInvalidRequest)

		case errors.Is(err, createBooking.ErrCenterNotFound):
			h.logger.Warn("POST /bookings - Center not found: center_id=%s", *req.CenterID)
			handlers.RespondNotFound(w, domain.MsgCenterNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: center_id=%s, service_id=%s", *req.CenterID, *req.ServiceID)
			handlers.RespondNotFound(w, domain.MsgServiceNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: center_id=%s, error=%v", *req.CenterID, err)
			handlers.RespondError(w, http.StatusInternalServerError, domain.MsgBookingFailed)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, center_id=%s",
		result.Booking.ID, result.Booking.CenterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
