package get_center

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/centers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/centers/models"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
)

type mockCenterService struct {
	mock.Mock
}

func (m *mockCenterService) GetBySlug(slug string) (*models.CenterResponse, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CenterResponse), args.Error(1)
}

func get(h *Handler, slug string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/centers/"+slug, nil)
	req = mux.SetURLVars(req, map[string]string{"slug": slug})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Found(t *testing.T) {
	svc := new(mockCenterService)
	svc.On("GetBySlug", "radiant-beauty-lounge").Return(&models.CenterResponse{
		ID:   "center-2",
		Slug: "radiant-beauty-lounge",
		Name: "Radiant Beauty Lounge",
		Services: []models.ServiceResponse{
			{ID: "service-2-1", Name: "Brow Lamination", Duration: 45, Price: 6500, CenterID: "center-2"},
		},
	}, nil)

	rec := get(NewHandler(svc, logger.NewNop()), "radiant-beauty-lounge")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"center": {
		"id": "center-2",
		"slug": "radiant-beauty-lounge",
		"name": "Radiant Beauty Lounge",
		"description": "",
		"logo": "",
		"services": [{"id": "service-2-1", "name": "Brow Lamination", "description": "", "duration": 45, "price": 6500, "centerId": "center-2"}]
	}}`, rec.Body.String())
}

func TestHandler_NotFound(t *testing.T) {
	svc := new(mockCenterService)
	svc.On("GetBySlug", "nope").Return(nil, centers.ErrCenterNotFound)

	rec := get(NewHandler(svc, logger.NewNop()), "nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Beauty center not found"}`, rec.Body.String())
}

func TestHandler_InternalError(t *testing.T) {
	svc := new(mockCenterService)
	svc.On("GetBySlug", "bella-vita-spa").Return(nil, errors.New("boom"))

	rec := get(NewHandler(svc, logger.NewNop()), "bella-vita-spa")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
