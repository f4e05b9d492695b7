package api

import (
	"net/http"

	"github.com/gorilla/mux"

	createBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/create_booking"
	getCenterHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_center"
	listBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_bookings"
	listCentersHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_centers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
)

// Router зависимости HTTP роутера. Metrics и RateLimiter опциональны.
type Router struct {
	CreateBooking *createBookingHandler.Handler
	ListBookings  *listBookingsHandler.Handler
	GetCenter     *getCenterHandler.Handler
	ListCenters   *listCentersHandler.Handler

	Metrics        middleware.HTTPMetrics
	MetricsHandler http.Handler
	MetricsPath    string
	RateLimiter    *middleware.RateLimiter

	Logger middleware.Logger
}

// Handler собирает mux.Router со всеми маршрутами сервиса
func (rt *Router) Handler() http.Handler {
	r := mux.NewRouter()

	// Метрики снаружи Recovery: 500 после паники тоже попадают в http_requests_total
	if rt.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(rt.Metrics))
	}

	r.Use(middleware.Recovery(rt.Logger))

	// Metrics endpoint (публичный)
	if rt.MetricsHandler != nil && rt.MetricsPath != "" {
		r.Handle(rt.MetricsPath, rt.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	// --- Центры ---
	api.HandleFunc("/centers", rt.ListCenters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centers/{slug}", rt.GetCenter.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", rt.ListBookings.Handle).Methods(http.MethodGet)

	var create http.Handler = http.HandlerFunc(rt.CreateBooking.Handle)
	if rt.RateLimiter != nil {
		create = rt.RateLimiter.Middleware(create)
	}
	api.Handle("/bookings", create).Methods(http.MethodPost)

	return r
}
