package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BeautyBooking/internal/api"
	createBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/create_booking"
	getCenterHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_center"
	listBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_bookings"
	listCentersHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_centers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/internal/config"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingStorage "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
	bookingsService "github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	centersService "github.com/m04kA/SMC-BeautyBooking/internal/service/centers"
	createBookingUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/validation"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

// bookingStore то, что нужно от хранилища сервисам и use case
type bookingStore interface {
	Append(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByCenter(ctx context.Context, centerID string) ([]*domain.Booking, error)
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BeautyBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Коллекторы создаются всегда, endpoint публикуется только если метрики включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Каталог центров
	catalogRepository, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded: %d centers %v", len(catalogRepository.Slugs()), catalogRepository.Slugs())

	// Хранилище бронирований
	store, closeStore, err := openStore(cfg, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to initialize %s storage: %v", cfg.Storage.Driver, err)
	}
	defer closeStore()

	// Валидатор формы
	validator := validation.New(
		validation.WithBusinessHours(cfg.Booking.BusinessHours),
		validation.WithBusinessWindow(cfg.Booking.OpenHour, cfg.Booking.CloseHour),
	)
	log.Info("Business hours check: enabled=%t window=[%02d:00, %02d:00)",
		cfg.Booking.BusinessHours, cfg.Booking.OpenHour, cfg.Booking.CloseHour)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store, log)
	centerSvc := centersService.NewService(catalogRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		catalogRepository,
		validator,
		metricsCollector,
		time.Duration(cfg.Server.ArtificialDelayMs)*time.Millisecond,
		log,
	)

	// Настраиваем роутер
	router := &api.Router{
		CreateBooking: createBookingHandler.NewHandler(createBookingUseCase, log),
		ListBookings:  listBookingsHandler.NewHandler(bookingSvc, log),
		GetCenter:     getCenterHandler.NewHandler(centerSvc, log),
		ListCenters:   listCentersHandler.NewHandler(centerSvc),
		Logger:        log,
	}

	if cfg.Metrics.Enabled {
		router.Metrics = metricsCollector
		router.MetricsHandler = metricsCollector.Handler()
		router.MetricsPath = cfg.Metrics.Path
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		router.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		log.Info("Rate limit for POST /api/bookings: %d rpm, burst %d",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// openStore выбирает хранилище по storage.driver и возвращает функцию закрытия соединений
func openStore(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (bookingStore, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

		return bookingStorage.NewRedisStore(client, cfg.Redis.Key), func() { _ = client.Close() }, nil

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		wrapped := dbmetrics.New(db, m)
		if err := wrapped.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repo := bookingStorage.NewRepository(wrapped)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return repo, func() { _ = wrapped.Close() }, nil

	default:
		log.Info("Using in-memory booking storage")
		return bookingStorage.NewMemoryStore(), func() {}, nil
	}
}
