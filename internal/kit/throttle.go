package kit

import (
	"sync"
	"time"
)

// Throttle defers calls to fn until delay has passed without a new call.
// When maxDelay is positive and at least maxDelay has passed since the first
// call of the current burst, the call goes through immediately instead.
// fn always receives the value of the most recent call.
type Throttle[T any] struct {
	fn       func(T)
	delay    time.Duration
	maxDelay time.Duration
	now      func() time.Time

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	burstStart time.Time // zero when nothing is pending
}

// NewThrottle creates a throttle for fn. A zero maxDelay disables the forced flush.
func NewThrottle[T any](fn func(T), delay, maxDelay time.Duration) *Throttle[T] {
	return &Throttle[T]{
		fn:       fn,
		delay:    delay,
		maxDelay: maxDelay,
		now:      time.Now,
	}
}

// Call schedules fn(v), replacing any pending call.
func (t *Throttle[T]) Call(v T) {
	t.mu.Lock()
	now := t.now()
	if t.burstStart.IsZero() {
		t.burstStart = now
	}
	t.cancelLocked()

	if t.maxDelay > 0 && now.Sub(t.burstStart) >= t.maxDelay {
		t.burstStart = time.Time{}
		t.mu.Unlock()
		t.fn(v)
		return
	}

	gen := t.generation
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		if gen != t.generation {
			t.mu.Unlock()
			return
		}
		t.timer = nil
		t.burstStart = time.Time{}
		t.mu.Unlock()
		t.fn(v)
	})
	t.mu.Unlock()
}

// Stop drops any pending call.
func (t *Throttle[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.burstStart = time.Time{}
}

// Pending reports whether a deferred call is waiting to run.
func (t *Throttle[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

func (t *Throttle[T]) cancelLocked() {
	t.generation++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
