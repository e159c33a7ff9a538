package timing

import (
	"sync"
	"time"
)

// Throttled limits calls to a function to at most one per wait window.
// Create one with Throttle.
//
// Throttled is safe for concurrent use. The wrapped function always runs
// without internal locks held.
type Throttled[A any] struct {
	fn   func(A)
	wait time.Duration
	opts options

	mu         sync.Mutex
	timer      Timer
	gen        uint64
	lastArgs   A
	hasArgs    bool
	lastInvoke time.Time // zero until the first invocation
}

// Throttle wraps fn so that it runs at most once per wait.
//
// Defaults: leading and trailing edges on. A call made once the window has
// elapsed is due: with the leading edge it runs immediately, otherwise a
// trailing timer is armed for a full wait. A call made inside the window arms
// a single trailing timer for the time remaining, which runs fn with the
// latest arguments supplied before it fires.
func Throttle[A any](fn func(A), wait time.Duration, opts ...Option) *Throttled[A] {
	return &Throttled[A]{
		fn:   fn,
		wait: wait,
		opts: resolve(true, true, opts),
	}
}

// Call submits args, invoking the wrapped function now, later, or not at all
// depending on the window and edge settings.
func (t *Throttled[A]) Call(args A) {
	t.mu.Lock()
	now := t.opts.clock.Now()
	remaining := t.wait - now.Sub(t.lastInvoke)
	t.lastArgs = args
	t.hasArgs = true

	// remaining > wait means the clock moved backwards; treat it as due.
	if remaining <= 0 || remaining > t.wait {
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
			t.gen++
		}
		if t.opts.leading {
			t.lastInvoke = now
			t.mu.Unlock()
			t.fn(args)
			return
		}
		if t.opts.trailing {
			t.armLocked(t.wait)
		}
	} else if t.opts.trailing && t.timer == nil {
		t.armLocked(remaining)
	}
	t.mu.Unlock()
}

func (t *Throttled[A]) armLocked(d time.Duration) {
	t.gen++
	gen := t.gen
	t.timer = t.opts.clock.AfterFunc(d, func() { t.fire(gen) })
}

func (t *Throttled[A]) fire(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.timer == nil {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	if !t.hasArgs {
		t.mu.Unlock()
		return
	}
	args := t.lastArgs
	var zero A
	t.lastArgs = zero
	t.hasArgs = false
	t.lastInvoke = t.opts.clock.Now()
	t.mu.Unlock()

	t.fn(args)
}

// Cancel drops any pending trailing invocation and resets the window so the
// next call is due immediately. Safe to call when nothing is pending.
func (t *Throttled[A]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = nil
	t.gen++
	var zero A
	t.lastArgs = zero
	t.hasArgs = false
	t.lastInvoke = time.Time{}
}

// Pending reports whether a trailing timer is armed.
func (t *Throttled[A]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}
