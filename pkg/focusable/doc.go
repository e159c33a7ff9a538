// Package focusable binds UI elements to a spatial navigation registry.
//
// Each element gets a [Handle] that keeps its registration consistent with
// the element's mounted state and live configuration:
//
//	item := focusable.New(scope, nav, focusable.Config[Card]{
//	    ExtraProps: card,
//	    OnEnterPress: func(c Card, _ focus.KeyPressDetails) {
//	        open(c)
//	    },
//	})
//	item.Ref(node) // registers
//	item.Ref(nil)  // unregisters
//
// Attaching a node is the only trigger for registration. Configuration
// changes made through [Handle.Configure] while registered are pushed to the
// registry as updates under the same key. Disposing the owning scope removes
// the registration.
//
// # Tree Position
//
// A handle records its parent key once, at creation, from the nearest scope
// that called [ProvideFocusKey]. Without one it attaches to
// [focus.RootFocusKey].
//
// # Focus State
//
// [Handle.Focused] and [Handle.HasFocusedChild] start false and change only
// when the registry reports new state. Both are backed by signals for
// callers that need to observe changes.
package focusable
