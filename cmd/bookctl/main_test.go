package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/api"
	createBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/create_booking"
	getCenterHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_center"
	listBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_bookings"
	listCentersHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_centers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingStorage "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
	bookingsService "github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	centersService "github.com/m04kA/SMC-BeautyBooking/internal/service/centers"
	createBookingUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/validation"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

func startServer(t *testing.T) string {
	t.Helper()

	log := logger.NewNop()
	repo, err := catalog.NewDefault()
	require.NoError(t, err)

	store := bookingStorage.NewMemoryStore()
	centerSvc := centersService.NewService(repo, log)
	uc := createBookingUC.NewUseCase(store, repo, validation.New(), metrics.New("bookctl-test"), 0, log)

	router := &api.Router{
		CreateBooking: createBookingHandler.NewHandler(uc, log),
		ListBookings:  listBookingsHandler.NewHandler(bookingsService.NewService(store, log), log),
		GetCenter:     getCenterHandler.NewHandler(centerSvc, log),
		ListCenters:   listCentersHandler.NewHandler(centerSvc),
		Logger:        log,
	}

	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRun_BookThenList(t *testing.T) {
	url := startServer(t)
	storePath := filepath.Join(t.TempDir(), "bookings.json")
	date := time.Now().AddDate(0, 0, 7).Format(domain.DateFormat)

	var out bytes.Buffer
	err := run(context.Background(), []string{
		"book",
		"-server", url,
		"-store", storePath,
		"-center", "bella-vita-spa",
		"-service", "service-1-1",
		"-name", "Jane Doe",
		"-email", "jane@example.com",
		"-date", date,
		"-time", "2:30",
		"-period", "pm",
	}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Submitting booking...")
	assert.Contains(t, out.String(), "Booking confirmed!")
	assert.Contains(t, out.String(), date+" at 2:30 PM")

	stored, err := bookingStorage.NewFileStore(storePath).List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "14:30", stored[0].Time)
	assert.Equal(t, "center-1", stored[0].CenterID)

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"list", "-store", storePath, "-center", "center-1"}, &out))
	assert.Contains(t, out.String(), stored[0].ID)

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"list", "-store", storePath, "-center", "center-2"}, &out))
	assert.Equal(t, "No bookings yet.\n", out.String())
}

func TestRun_BookInvalidForm(t *testing.T) {
	url := startServer(t)
	storePath := filepath.Join(t.TempDir(), "bookings.json")

	var out bytes.Buffer
	err := run(context.Background(), []string{
		"book",
		"-server", url,
		"-store", storePath,
		"-center", "bella-vita-spa",
		"-service", "service-1-1",
		"-name", "J",
		"-email", "not-an-email",
		"-date", "2020-01-01",
		"-time", "10:00",
	}, &out)
	require.EqualError(t, err, domain.MsgValidationFailed)

	assert.Contains(t, out.String(), "clientName: "+domain.MsgInvalidName)
	assert.Contains(t, out.String(), "clientEmail: "+domain.MsgInvalidEmail)
	assert.Contains(t, out.String(), "date: "+domain.MsgPastDate)

	stored, err := bookingStorage.NewFileStore(storePath).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRun_UnknownCenter(t *testing.T) {
	url := startServer(t)

	err := run(context.Background(), []string{
		"book", "-server", url, "-store", filepath.Join(t.TempDir(), "b.json"),
		"-center", "nowhere", "-service", "service-1-1",
	}, &bytes.Buffer{})
	require.EqualError(t, err, domain.MsgCenterNotFound)
}

func TestRun_Centers(t *testing.T) {
	url := startServer(t)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"centers", "-server", url}, &out))

	assert.Contains(t, out.String(), "(bella-vita-spa)")
	assert.Contains(t, out.String(), "(serenity-wellness-center)")
}

func TestRun_Usage(t *testing.T) {
	err := run(context.Background(), []string{"frobnicate"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"book", "-center", "bella-vita-spa"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errUsage)
}

func TestParseTwelveHour(t *testing.T) {
	tm, err := parseTwelveHour("12:15", "AM")
	require.NoError(t, err)
	assert.Equal(t, "00:15", tm)

	tm, err = parseTwelveHour("9:05", "pm")
	require.NoError(t, err)
	assert.Equal(t, "21:05", tm)

	_, err = parseTwelveHour("13:00", "PM")
	assert.Error(t, err)

	_, err = parseTwelveHour("noon", "PM")
	assert.Error(t, err)
}
