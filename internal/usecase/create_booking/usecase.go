package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/catalog"
)

// idSuffixLength длина случайной части ID бронирования
const idSuffixLength = 7

// UseCase use case для создания бронирования
type UseCase struct {
	store        BookingStore
	catalog      CatalogRepository
	validator    FormValidator
	metrics      Metrics
	timeProvider TimeProvider
	newSuffix    func() string
	delay        time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// delay - искусственная задержка перед обработкой (эмуляция сети), 0 - без задержки.
func NewUseCase(
	store BookingStore,
	catalog CatalogRepository,
	validator FormValidator,
	metrics Metrics,
	delay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		catalog:      catalog,
		validator:    validator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newSuffix:    randomSuffix,
		delay:        delay,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.wait(ctx); err != nil {
		uc.logger.Warn("CreateBooking: request abandoned during delay: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 1. Валидация идентификаторов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: invalid request: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: center=%s, service=%s, date=%s, time=%s",
		req.CenterID, req.ServiceID, req.Form.Date, req.Form.Time)

	// 2. Валидация формы
	result := uc.validator.Validate(req.Form)
	if !result.IsValid {
		for _, fe := range result.Errors {
			uc.metrics.IncValidationFailure(string(fe.Field))
		}
		uc.logger.Warn("CreateBooking: validation failed: %v", result.Messages())
		return nil, &ValidationError{Errors: result.Errors}
	}

	// 3. Услуга должна принадлежать центру
	if _, err := uc.catalog.GetService(req.CenterID, req.ServiceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrCenterNotFound):
			uc.logger.Warn("CreateBooking: center id=%s not found", req.CenterID)
			return nil, ErrCenterNotFound
		case errors.Is(err, catalog.ErrServiceNotFound):
			uc.logger.Warn("CreateBooking: service id=%s not found in center id=%s", req.ServiceID, req.CenterID)
			return nil, ErrServiceNotFound
		default:
			uc.logger.Error("CreateBooking: catalog error: %v", err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	// 4. Создание и сохранение
	now := uc.timeProvider.Now().UTC()
	booking := domain.NewBookingFromForm(uc.newID(now), req.ServiceID, req.CenterID, req.Form, now)

	if err := uc.store.Append(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to save booking %s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingCreated(booking.CenterID)
	uc.logger.Info("CreateBooking: booking %s created", booking.ID)

	return &Response{Booking: booking}, nil
}

// wait искусственная задержка с учетом отмены запроса
func (uc *UseCase) wait(ctx context.Context) error {
	if uc.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(uc.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// newID "booking-<unix ms>-<7 символов>"
func (uc *UseCase) newID(now time.Time) string {
	return fmt.Sprintf("booking-%d-%s", now.UnixMilli(), uc.newSuffix())
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLength]
}
