package cotask

import (
	"sync"
	"time"

	slog "github.com/vearne/simplelog"
)

// TimerFuture is a Pollable that becomes ready exactly once, no earlier
// than the given duration after construction. A background timer flips the
// completed flag when the duration elapses and wakes the task that last
// polled the future.
type TimerFuture struct {
	mu        sync.Mutex
	completed bool
	waker     Waker
}

func NewTimerFuture(d time.Duration) *TimerFuture {
	t := TimerFuture{}
	time.AfterFunc(d, func() {
		t.mu.Lock()
		t.completed = true
		w := t.waker
		t.mu.Unlock()

		slog.Debug("timer elapsed after %v", d)
		if w != nil {
			w.Wake()
		}
	})
	return &t
}

func (t *TimerFuture) Poll(w Waker) (*PollResult, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.completed {
		return &PollResult{}, true
	}
	// remember the most recent waker so the timer callback wakes the
	// task this future currently belongs to
	t.waker = w
	return nil, false
}
