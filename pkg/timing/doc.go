// Package timing provides rate-limited invocation wrappers.
//
// # Debounce
//
// [Debounce] coalesces a burst of calls into a single trailing invocation
// that runs once the caller has been quiet for the wait duration:
//
//	save := timing.Debounce(func(text string) {
//	    store.Save(text)
//	}, 300*time.Millisecond)
//	save.Call("h")
//	save.Call("he")
//	save.Call("hel") // only "hel" is saved, 300ms after this call
//
// With [WithLeading] the first call of a burst also runs immediately.
//
// # Throttle
//
// [Throttle] runs at most once per wait window. By default the call that
// opens a window runs immediately and the latest call made inside the window
// runs once at its end:
//
//	move := timing.Throttle(nav.Move, 100*time.Millisecond)
//
// # Pending Arguments
//
// Both wrappers keep only the latest arguments for a pending trailing call.
// Earlier pending arguments are discarded, never queued. Cancel drops the
// pending call without running it.
//
// # Clocks
//
// Timestamps and timers come from a [Clock]. The default is system time;
// use [WithClock] or [SetClock] with timingtest.FakeClock for deterministic
// tests.
package timing
