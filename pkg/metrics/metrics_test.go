package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("beauty-booking")

	m.IncBookingCreated("center-1")
	m.IncBookingCreated("center-1")
	m.IncValidationFailure("clientEmail")
	m.ObserveHTTPRequest(http.MethodPost, "/api/bookings", http.StatusCreated, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("center-1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("clientEmail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/bookings", "201")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("beauty-booking")
	m.ObserveDBQuery("select", time.Millisecond, nil)
	m.ObserveDBQuery("insert", time.Millisecond, errors.New("boom"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `db_query_duration_seconds_count{operation="insert",service="beauty-booking",status="error"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
