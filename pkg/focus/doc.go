// Package focus defines the contract between focusable UI elements and a
// spatial navigation registry, and provides Navigator, an in-process
// registry implementing it.
//
// # Registry Contract
//
// A [Registry] accepts keyed registrations and focus requests:
//
//   - AddFocusable inserts a full [Registration] snapshot.
//   - UpdateFocusable merges an [Update] into an existing registration.
//   - RemoveFocusable deletes a registration; unknown keys are ignored.
//   - SetFocus asks the registry to move focus to a key.
//
// The registry reports focus changes back through the OnUpdateFocus and
// OnUpdateHasFocusedChild callbacks carried by each registration.
//
// # Navigator
//
// [Navigator] keeps registrations in a tree addressed by parent keys. Items
// registered under [RootFocusKey] are top level. Arrow keys move focus to the
// nearest sibling in the pressed direction, bubbling up to the parent scope
// when no sibling qualifies, unless the parent is a focus boundary for that
// direction.
//
//	nav := focus.NewNavigator(focus.WithKeyThrottle(80 * time.Millisecond))
//	nav.AddFocusable(focus.Registration{FocusKey: "play", ParentFocusKey: focus.RootFocusKey, Node: box, Focusable: true})
//	nav.SetFocus("play", focus.FocusDetails{})
//	nav.KeyDown(focus.KeyRight)
//	nav.KeyUp(focus.KeyRight)
//
// Navigator must be driven from a single goroutine (the UI thread).
package focus
