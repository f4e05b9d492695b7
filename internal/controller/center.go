package controller

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// CenterState снимок состояния загрузки центра
type CenterState struct {
	Center *domain.Center
	Status domain.AsyncStatus
	Error  string
}

// CenterLoader загружает центр по slug с той же машиной статусов, что и BookingController.
// Новый Load заменяет предыдущий, поздние ответы отбрасываются.
type CenterLoader struct {
	fetcher CenterFetcher
	log     Logger

	mu    sync.Mutex
	state CenterState
	live  liveness
}

func NewCenterLoader(fetcher CenterFetcher, log Logger) *CenterLoader {
	return &CenterLoader{
		fetcher: fetcher,
		log:     log,
		state:   CenterState{Status: domain.StatusIdle},
	}
}

func (l *CenterLoader) State() CenterState {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

// Load возвращает ErrSuperseded, если результат отброшен, и ErrClosed после Close
func (l *CenterLoader) Load(ctx context.Context, slug string) error {
	l.mu.Lock()
	if l.live.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	callCtx, gen := l.live.begin(ctx)
	l.state = CenterState{Status: domain.StatusLoading}
	l.mu.Unlock()

	center, err := l.fetcher.GetCenter(callCtx, slug)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.live.isLive(gen) {
		l.log.Info("LoadCenter: discarding result of superseded request (slug=%s)", slug)
		return ErrSuperseded
	}
	l.live.finish()

	switch {
	case err != nil:
		l.state = CenterState{Status: domain.StatusError, Error: FormatError(err)}
		l.log.Warn("LoadCenter: failed to load %s: %v", slug, err)
	case center == nil:
		l.state = CenterState{Status: domain.StatusError, Error: domain.MsgCenterNotFound}
	default:
		l.state = CenterState{Center: center, Status: domain.StatusSuccess}
	}

	return nil
}

// Close отменяет загрузку в полете
func (l *CenterLoader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.live.close()
}
