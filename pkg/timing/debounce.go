package timing

import (
	"sync"
	"time"
)

// Debounced delays calls to a function until wait has elapsed since the most
// recent call. Create one with Debounce.
//
// Debounced is safe for concurrent use. The wrapped function always runs
// without internal locks held, so it may call back into the wrapper.
type Debounced[A any] struct {
	fn   func(A)
	wait time.Duration
	opts options

	mu             sync.Mutex
	timer          Timer
	gen            uint64 // identifies the live timer; stale fires are ignored
	lastArgs       A
	hasArgs        bool
	lastCallTime   time.Time
	leadingInvoked bool
}

// Debounce wraps fn so that a burst of calls results in a single trailing
// invocation with the latest arguments, wait after the last call.
//
// Defaults: leading edge off, trailing edge on. With the leading edge on, the
// first call of a burst invokes fn immediately with its own arguments. A
// leading invocation does not suppress the trailing one: with both edges on,
// a burst produces one call at its start and one at its end, even when the
// burst is a single call.
func Debounce[A any](fn func(A), wait time.Duration, opts ...Option) *Debounced[A] {
	return &Debounced[A]{
		fn:   fn,
		wait: wait,
		opts: resolve(false, true, opts),
	}
}

// Call records args as the pending arguments and restarts the wait timer.
func (d *Debounced[A]) Call(args A) {
	d.mu.Lock()
	d.lastArgs = args
	d.hasArgs = true
	d.lastCallTime = d.opts.clock.Now()

	leading := d.opts.leading && !d.leadingInvoked && d.timer == nil
	if leading {
		d.leadingInvoked = true
	}
	d.mu.Unlock()

	if leading {
		d.fn(args)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.opts.clock.AfterFunc(d.wait, func() { d.fire(gen) })
}

func (d *Debounced[A]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	invoke := d.opts.trailing && d.hasArgs
	args := d.lastArgs
	d.resetLocked()
	d.mu.Unlock()

	if invoke {
		d.fn(args)
	}
}

// Cancel drops any pending invocation and clears all bookkeeping. It never
// invokes the wrapped function and is safe to call when nothing is pending.
func (d *Debounced[A]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = nil
	d.gen++
	d.resetLocked()
}

// Pending reports whether a timer is armed.
func (d *Debounced[A]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// LastCallTime returns the time of the most recent call in the current
// burst, or the zero time when no burst is in progress.
func (d *Debounced[A]) LastCallTime() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastCallTime
}

func (d *Debounced[A]) resetLocked() {
	var zero A
	d.lastArgs = zero
	d.hasArgs = false
	d.lastCallTime = time.Time{}
	d.leadingInvoked = false
}
