package list_centers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/centers"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
)

func TestHandler_ListsCatalog(t *testing.T) {
	repo, err := catalog.NewDefault()
	require.NoError(t, err)

	h := NewHandler(centers.NewService(repo, logger.NewNop()))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/centers", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListCentersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Centers, 3)
	assert.Equal(t, "center-1", resp.Centers[0].ID)
	assert.Equal(t, "bella-vita-spa", resp.Centers[0].Slug)
	assert.NotEmpty(t, resp.Centers[0].Services)
}
