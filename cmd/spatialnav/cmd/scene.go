package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/go-logr/logr"

	"github.com/go-drift/spatialnav/cmd/spatialnav/internal/config"
	"github.com/go-drift/spatialnav/pkg/core"
	"github.com/go-drift/spatialnav/pkg/focus"
	"github.com/go-drift/spatialnav/pkg/focusable"
	"github.com/go-drift/spatialnav/pkg/timing/timingtest"
)

// scene is a resolved scene mounted on a navigator. Every element is a
// focusable handle whose scope hangs off its parent's scope.
type scene struct {
	nav     *focus.Navigator
	clock   *timingtest.FakeClock
	root    *core.Scope
	handles map[string]*focusable.Handle[string]
	out     io.Writer
	width   int
	height  int
}

// mountScene registers every focusable of res, printing focus changes and
// enter presses to out.
func mountScene(res *config.Resolved, logger logr.Logger, out io.Writer) *scene {
	clock := timingtest.NewFakeClock()
	opts := []focus.Option{
		focus.WithLogger(logger),
		focus.WithRTL(res.RTL),
		focus.WithClock(clock),
	}
	if res.Throttle > 0 {
		opts = append(opts, focus.WithKeyThrottle(res.Throttle))
	}

	s := &scene{
		nav:     focus.NewNavigator(opts...),
		clock:   clock,
		root:    core.NewScope(nil),
		handles: make(map[string]*focusable.Handle[string], len(res.Focusables)),
		out:     out,
	}

	scopes := make(map[string]*core.Scope, len(res.Focusables))
	for _, item := range res.Focusables {
		parent := s.root
		if p, ok := scopes[item.Parent]; ok {
			parent = p
		}
		scope := core.NewScope(parent)

		h := focusable.New(scope, s.nav, focusable.Config[string]{
			FocusKey:                item.Key,
			Focusable:               item.Focusable,
			SaveLastFocusedChild:    item.SaveLastFocusedChild,
			AutoRestoreFocus:        item.AutoRestoreFocus,
			TrackChildren:           item.TrackChildren,
			ForceFocus:              item.ForceFocus,
			IsFocusBoundary:         item.FocusBoundary,
			FocusBoundaryDirections: res.Directions[item.Key],
			PreferredChildFocusKey:  item.PreferredChild,
			ExtraProps:              item.Key,
			OnEnterPress: func(key string, d focus.KeyPressDetails) {
				fmt.Fprintf(s.out, "enter   %s (x%d)\n", key, d.PressedKeys[string(focus.KeyEnter)])
			},
		})
		focusable.ProvideFocusKey(scope, h.FocusKey())
		scopes[item.Key] = scope
		s.handles[item.Key] = h

		key := item.Key
		core.UseSignal(scope, h.FocusedSignal(), func(focused bool) {
			if focused {
				fmt.Fprintf(s.out, "focus   %s\n", key)
			}
		})
		if item.TrackChildren {
			core.UseSignal(scope, h.HasFocusedChildSignal(), func(has bool) {
				fmt.Fprintf(s.out, "within  %s=%t\n", key, has)
			})
		}

		r := item.Rect
		h.Ref(focus.NewBox(r.X, r.Y, r.X+r.Width, r.Y+r.Height))
		s.width = max(s.width, int(math.Ceil(r.X+r.Width)))
		s.height = max(s.height, int(math.Ceil(r.Y+r.Height)))
	}
	return s
}

// replay focuses the initial key and plays presses. Held keys repeat at
// the scene's repeat interval on the scene clock.
func (s *scene) replay(res *config.Resolved) {
	if res.Focus != "" {
		s.handles[res.Focus].FocusSelf(focus.FocusDetails{Event: "replay"})
	} else {
		s.nav.SetFocus("", focus.FocusDetails{Event: "replay"})
	}

	for _, press := range res.Presses {
		for i := range press.Repeats {
			if i > 0 {
				s.clock.Advance(res.Repeat)
			}
			s.nav.KeyDown(press.Key)
		}
		s.nav.KeyUp(press.Key)
		s.clock.Advance(res.Repeat)
	}
}

// unmount disposes every handle, removing all registrations. Focus changes
// caused by the teardown are not printed.
func (s *scene) unmount() {
	s.out = io.Discard
	s.root.Dispose()
}
