package timing

// Option configures a Debounce or Throttle wrapper.
type Option func(*options)

type options struct {
	leading  bool
	trailing bool
	clock    Clock
}

// WithLeading controls whether the wrapped function fires on the leading
// edge of a window.
func WithLeading(leading bool) Option {
	return func(o *options) { o.leading = leading }
}

// WithTrailing controls whether the wrapped function fires on the trailing
// edge of a window.
func WithTrailing(trailing bool) Option {
	return func(o *options) { o.trailing = trailing }
}

// WithClock sets the clock used for timestamps and timers. Nil keeps the
// package default.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func resolve(leading, trailing bool, opts []Option) options {
	o := options{leading: leading, trailing: trailing}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.clock == nil {
		o.clock = DefaultClock()
	}
	return o
}
