package controller

import "context"

// liveness отслеживает, какой вызов сейчас "живой".
// Каждый новый вызов получает следующее поколение и отменяет контекст предыдущего.
// Методы вызываются под мьютексом владельца.
type liveness struct {
	generation uint64
	cancel     context.CancelFunc
	closed     bool
}

// begin открывает новое поколение
func (l *liveness) begin(parent context.Context) (context.Context, uint64) {
	l.invalidate()
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	return ctx, l.generation
}

// isLive true, если gen все еще текущее поколение и владелец не закрыт
func (l *liveness) isLive(gen uint64) bool {
	return !l.closed && gen == l.generation
}

// finish освобождает контекст завершившегося живого вызова
func (l *liveness) finish() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// invalidate делает все начатые вызовы устаревшими
func (l *liveness) invalidate() {
	l.finish()
	l.generation++
}

func (l *liveness) close() {
	l.invalidate()
	l.closed = true
}
