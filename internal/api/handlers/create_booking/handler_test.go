package create_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

const validBody = `{
	"serviceId": "service-1-1",
	"centerId": "center-1",
	"formData": {"clientName": "Jane Doe", "clientEmail": "jane@example.com", "date": "2026-06-08", "time": "14:00"}
}`

func serve(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := new(mockUseCase)
	createdAt := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, &createBooking.Request{
		ServiceID: "service-1-1",
		CenterID:  "center-1",
		Form: domain.BookingFormData{
			ClientName:  "Jane Doe",
			ClientEmail: "jane@example.com",
			Date:        "2026-06-08",
			Time:        "14:00",
		},
	}).Return(&createBooking.Response{Booking: &domain.Booking{
		ID:          "booking-1780308000000-abc1234",
		ServiceID:   "service-1-1",
		CenterID:    "center-1",
		ClientName:  "Jane Doe",
		ClientEmail: "jane@example.com",
		Date:        "2026-06-08",
		Time:        "14:00",
		CreatedAt:   createdAt,
	}}, nil)

	rec := serve(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"booking": {
		"id": "booking-1780308000000-abc1234",
		"serviceId": "service-1-1",
		"centerId": "center-1",
		"clientName": "Jane Doe",
		"clientEmail": "jane@example.com",
		"date": "2026-06-08",
		"time": "14:00",
		"createdAt": "2026-06-01T10:00:00.000Z"
	}}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandler_InvalidRequestShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"serviceId":`},
		{"missing centerId", `{"serviceId":"service-1-1","formData":{}}`},
		{"null formData", `{"serviceId":"service-1-1","centerId":"center-1","formData":null}`},
		{"trailing data", validBody + `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)

			rec := serve(t, uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid request data"}`, rec.Body.String())
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "validation",
			err: &createBooking.ValidationError{Errors: []domain.FieldError{
				{Field: domain.FieldClientName, Message: domain.MsgRequired},
				{Field: domain.FieldDate, Message: domain.MsgPastDate},
			}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","errors":["This field is required","Date and time must be in the future"]}`,
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: centerId is empty", createBooking.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request data"}`,
		},
		{
			name:       "center not found",
			err:        createBooking.ErrCenterNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Beauty center not found"}`,
		},
		{
			name:       "service not found",
			err:        createBooking.ErrServiceNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Service not found"}`,
		},
		{
			name:       "internal",
			err:        fmt.Errorf("%w: disk full", createBooking.ErrInternal),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to create booking. Please try again."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(t, uc, validBody)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
