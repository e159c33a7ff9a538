package timing

import (
	"sync"
	"time"
)

// Clock provides time and deferred callbacks for rate-limited wrappers. The
// default implementation uses system time. Tests can inject a fake clock via
// SetClock or WithClock to control timing deterministically.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f once d has elapsed. The returned Timer can cancel
	// the call if it has not started yet.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback created by Clock.AfterFunc.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// was stopped before it fired.
	Stop() bool
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

var (
	clockMu sync.RWMutex
	// clock is the package-level time source, replaceable for testing.
	clock Clock = realClock{}
)

// SetClock replaces the default clock used by wrappers created without
// WithClock. Returns the previous clock so callers can restore it during
// cleanup. Passing nil restores the system clock.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// DefaultClock returns the active package-level clock.
func DefaultClock() Clock {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock
}

// Now returns the current time from the active clock.
func Now() time.Time { return DefaultClock().Now() }
