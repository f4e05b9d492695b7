package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// BookingState снимок состояния отправки.
// Idle/Loading: Booking == nil, Error == "".
// Success: Booking != nil, Error == "".
// Error: Booking == nil, Error != "".
type BookingState struct {
	Booking *domain.Booking
	Status  domain.AsyncStatus
	Error   string
}

// BookingController владеет одним слотом отправки бронирования.
// Повторный CreateBooking во время Loading отменяет предыдущий запрос и заменяет его:
// результат устаревшего запроса отбрасывается без изменения состояния и без записи в хранилище.
type BookingController struct {
	submitter BookingSubmitter
	store     BookingStore
	log       Logger
	listener  func(BookingState)

	mu    sync.Mutex
	state BookingState
	live  liveness
}

// BookingOption настраивает BookingController
type BookingOption func(*BookingController)

// WithBookingListener вызывается при каждом изменении состояния, под внутренней блокировкой:
// listener не должен вызывать методы контроллера
func WithBookingListener(fn func(BookingState)) BookingOption {
	return func(c *BookingController) {
		c.listener = fn
	}
}

// NewBookingController создает контроллер в состоянии Idle
func NewBookingController(submitter BookingSubmitter, store BookingStore, log Logger, opts ...BookingOption) *BookingController {
	c := &BookingController{
		submitter: submitter,
		store:     store,
		log:       log,
		state:     BookingState{Status: domain.StatusIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State возвращает текущее состояние
func (c *BookingController) State() BookingState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// CreateBooking переводит контроллер в Loading, вызывает сетевой коллаборатор
// и по его результату в Success или Error. Форму не валидирует.
//
// Ошибки сети отражаются только в состоянии. Возвращаемая ошибка:
//   - ErrPersist: сервер подтвердил бронирование (статус Success), но запись в хранилище не удалась;
//   - ErrSuperseded: результат отброшен из-за более позднего вызова, Reset или Close;
//   - ErrClosed: контроллер закрыт до вызова.
func (c *BookingController) CreateBooking(ctx context.Context, serviceID, centerID string, form domain.BookingFormData) error {
	c.mu.Lock()
	if c.live.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	callCtx, gen := c.live.begin(ctx)
	c.setState(BookingState{Status: domain.StatusLoading})
	c.mu.Unlock()

	booking, failure := c.submit(callCtx, serviceID, centerID, form)

	c.mu.Lock()
	if !c.live.isLive(gen) {
		c.mu.Unlock()
		c.log.Info("CreateBooking: discarding result of superseded request (center=%s, service=%s)", centerID, serviceID)
		return ErrSuperseded
	}
	c.live.finish()

	if failure != nil {
		msg := FormatError(failure)
		c.setState(BookingState{Status: domain.StatusError, Error: msg})
		c.mu.Unlock()
		c.log.Warn("CreateBooking: booking failed (center=%s, service=%s): %s", centerID, serviceID, msg)
		return nil
	}

	c.setState(BookingState{Booking: booking, Status: domain.StatusSuccess})
	c.mu.Unlock()

	c.log.Info("CreateBooking: booking %s confirmed", booking.ID)

	if err := c.store.Append(ctx, booking); err != nil {
		c.log.Error("CreateBooking: failed to persist booking %s: %v", booking.ID, err)
		return fmt.Errorf("%w: %s: %v", ErrPersist, booking.ID, err)
	}

	return nil
}

// Reset возвращает контроллер в Idle; запрос в полете становится устаревшим
func (c *BookingController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.live.invalidate()
	c.setState(BookingState{Status: domain.StatusIdle})
}

// Close отменяет запрос в полете; поздние результаты отбрасываются, новые вызовы получают ErrClosed
func (c *BookingController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.live.close()
}

// submit возвращает либо бронирование, либо значение ошибки (error или значение из recover)
func (c *BookingController) submit(ctx context.Context, serviceID, centerID string, form domain.BookingFormData) (booking *domain.Booking, failure interface{}) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("CreateBooking: submitter panicked: %v", r)
			booking, failure = nil, r
		}
	}()

	booking, err := c.submitter.SubmitBooking(ctx, serviceID, centerID, form)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.MsgUnexpectedError
	}
	return booking, nil
}

func (c *BookingController) setState(s BookingState) {
	c.state = s
	if c.listener != nil {
		c.listener(s)
	}
}
