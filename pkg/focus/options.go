package focus

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/go-drift/spatialnav/pkg/timing"
)

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger. Decisions are logged at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(n *Navigator) { n.logger = logger }
}

// WithKeyThrottle limits repeated keydown handling to one per d. Releasing
// a key resets the window. Zero disables throttling.
func WithKeyThrottle(d time.Duration) Option {
	return func(n *Navigator) { n.keyThrottle = d }
}

// WithRTL mirrors horizontal navigation for right-to-left layouts.
func WithRTL(rtl bool) Option {
	return func(n *Navigator) { n.rtl = rtl }
}

// WithClock sets the clock used by the key throttle.
func WithClock(c timing.Clock) Option {
	return func(n *Navigator) { n.clock = c }
}
