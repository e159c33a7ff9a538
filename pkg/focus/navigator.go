package focus

import (
	"slices"
	"time"

	"github.com/go-logr/logr"

	"github.com/go-drift/spatialnav/pkg/errors"
	"github.com/go-drift/spatialnav/pkg/timing"
)

// entry is a stored registration plus navigator-owned bookkeeping.
type entry struct {
	Registration
	lastFocusedChildKey string
}

func (e *entry) rect() Rect {
	if e.Node == nil {
		return Rect{}
	}
	return e.Node.FocusRect()
}

// Navigator is an in-process Registry that tracks focus across a tree of
// registrations and routes key presses to them.
//
// Navigator is NOT thread-safe. Drive it from the UI thread only.
type Navigator struct {
	logger      logr.Logger
	rtl         bool
	keyThrottle time.Duration
	clock       timing.Clock

	focusables map[string]*entry
	order      []string // registration order, for deterministic iteration
	focusKey   string
	// parentsHavingFocusedChild lists ancestors of the focused item,
	// nearest first.
	parentsHavingFocusedChild []string

	pressedKeys map[string]int
	keyDown     *timing.Throttled[Key]
}

var _ Registry = (*Navigator)(nil)

// NewNavigator creates an empty Navigator.
func NewNavigator(opts ...Option) *Navigator {
	n := &Navigator{
		logger:      logr.Discard(),
		focusables:  make(map[string]*entry),
		pressedKeys: make(map[string]int),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	if n.keyThrottle > 0 {
		n.keyDown = timing.Throttle(n.handleKeyDown, n.keyThrottle,
			timing.WithTrailing(false), timing.WithClock(n.clock))
	}
	return n
}

// AddFocusable registers reg. Adding a key that is already registered
// replaces the previous registration and reports a registry error.
func (n *Navigator) AddFocusable(reg Registration) {
	const op = "focus.Navigator.AddFocusable"
	if reg.FocusKey == "" {
		errors.Report(&errors.NavError{Op: op, Kind: errors.KindRegistry, Err: errors.ErrEmptyKey})
		return
	}
	if _, exists := n.focusables[reg.FocusKey]; exists {
		errors.Report(&errors.NavError{Op: op, Kind: errors.KindRegistry, FocusKey: reg.FocusKey, Err: errors.ErrDuplicateKey})
		n.order = slices.DeleteFunc(n.order, func(k string) bool { return k == reg.FocusKey })
	}
	n.focusables[reg.FocusKey] = &entry{Registration: reg}
	n.order = append(n.order, reg.FocusKey)
	n.logger.V(1).Info("addFocusable", "focusKey", reg.FocusKey, "parentFocusKey", reg.ParentFocusKey, "focusable", reg.Focusable)

	if reg.ForceFocus && reg.Focusable && n.focusKey == "" {
		n.SetFocus(reg.FocusKey, FocusDetails{})
	}
}

// UpdateFocusable applies update to a registered key. Unknown keys are
// reported and ignored.
func (n *Navigator) UpdateFocusable(focusKey string, update Update) {
	e, ok := n.focusables[focusKey]
	if !ok {
		errors.Report(&errors.NavError{
			Op:       "focus.Navigator.UpdateFocusable",
			Kind:     errors.KindRegistry,
			FocusKey: focusKey,
			Err:      errors.ErrUnknownKey,
		})
		return
	}
	e.Node = update.Node
	e.PreferredChildFocusKey = update.PreferredChildFocusKey
	e.Focusable = update.Focusable
	e.IsFocusBoundary = update.IsFocusBoundary
	e.FocusBoundaryDirections = update.FocusBoundaryDirections
	e.OnEnterPress = update.OnEnterPress
	e.OnEnterRelease = update.OnEnterRelease
	e.OnArrowPress = update.OnArrowPress
	e.OnArrowRelease = update.OnArrowRelease
	e.OnFocus = update.OnFocus
	e.OnBlur = update.OnBlur
	n.logger.V(1).Info("updateFocusable", "focusKey", focusKey, "focusable", update.Focusable)
}

// RemoveFocusable deletes a registration. Unknown keys are a no-op. When the
// removed item held focus and its parent has AutoRestoreFocus, focus moves
// back into the parent.
func (n *Navigator) RemoveFocusable(focusKey string) {
	e, ok := n.focusables[focusKey]
	if !ok {
		return
	}
	delete(n.focusables, focusKey)
	n.order = slices.DeleteFunc(n.order, func(k string) bool { return k == focusKey })
	for _, other := range n.focusables {
		if other.lastFocusedChildKey == focusKey {
			other.lastFocusedChildKey = ""
		}
	}
	n.logger.V(1).Info("removeFocusable", "focusKey", focusKey)

	if n.focusKey != focusKey {
		n.parentsHavingFocusedChild = slices.DeleteFunc(n.parentsHavingFocusedChild,
			func(k string) bool { return k == focusKey })
		return
	}

	n.focusKey = ""
	n.updateParentsHasFocusedChild("")
	if parent, ok := n.focusables[e.ParentFocusKey]; ok && parent.AutoRestoreFocus {
		n.logger.V(1).Info("restoring focus to parent", "focusKey", focusKey, "parentFocusKey", parent.FocusKey)
		n.SetFocus(parent.FocusKey, FocusDetails{})
	}
}

// SetFocus moves focus to focusKey. A key with focusable children resolves
// to a leaf: the last focused child if the item saves it, else its
// preferred child, else its top-left child. An empty key focuses the first
// ForceFocus item, if any. Requests that resolve to nothing are ignored.
func (n *Navigator) SetFocus(focusKey string, details FocusDetails) {
	if focusKey == "" {
		focusKey = n.forcedFocusKey()
		if focusKey == "" {
			return
		}
	}
	next := n.resolveFocusKey(focusKey, len(n.focusables))
	if next == "" {
		n.logger.V(1).Info("setFocus ignored", "focusKey", focusKey)
		return
	}
	n.setCurrentFocusedKey(next, details)
}

// FocusedKey returns the key of the focused item, or "" if none.
func (n *Navigator) FocusedKey() string {
	return n.focusKey
}

// Keys returns registered keys in registration order.
func (n *Navigator) Keys() []string {
	return slices.Clone(n.order)
}

// Registration returns the stored snapshot for focusKey.
func (n *Navigator) Registration(focusKey string) (Registration, bool) {
	e, ok := n.focusables[focusKey]
	if !ok {
		return Registration{}, false
	}
	return e.Registration, true
}

// HasFocusedChild reports whether a descendant of focusKey holds focus.
func (n *Navigator) HasFocusedChild(focusKey string) bool {
	return slices.Contains(n.parentsHavingFocusedChild, focusKey)
}

// LastFocusedChild returns the remembered child key of focusKey.
func (n *Navigator) LastFocusedChild(focusKey string) string {
	if e, ok := n.focusables[focusKey]; ok {
		return e.lastFocusedChildKey
	}
	return ""
}

func (n *Navigator) forcedFocusKey() string {
	for _, key := range n.order {
		if e := n.focusables[key]; e.ForceFocus && e.Focusable {
			return key
		}
	}
	return ""
}

// focusableChildren returns the focusable direct children of parentKey in
// registration order.
func (n *Navigator) focusableChildren(parentKey string) []*entry {
	var children []*entry
	for _, key := range n.order {
		if e := n.focusables[key]; e.ParentFocusKey == parentKey && e.Focusable {
			children = append(children, e)
		}
	}
	return children
}

// resolveFocusKey descends from target to the leaf that should receive
// focus. depth bounds the descent so a malformed parent cycle terminates.
func (n *Navigator) resolveFocusKey(target string, depth int) string {
	e := n.focusables[target]
	children := n.focusableChildren(target)
	if len(children) == 0 || depth < 0 {
		if e == nil || !e.Focusable {
			return ""
		}
		return target
	}

	if e != nil {
		if e.SaveLastFocusedChild && n.isFocusableKey(e.lastFocusedChildKey) {
			return n.resolveFocusKey(e.lastFocusedChildKey, depth-1)
		}
		if e.PreferredChildFocusKey != "" && n.isFocusableKey(e.PreferredChildFocusKey) {
			return n.resolveFocusKey(e.PreferredChildFocusKey, depth-1)
		}
	}
	sortByPosition(children)
	return n.resolveFocusKey(children[0].FocusKey, depth-1)
}

func (n *Navigator) isFocusableKey(key string) bool {
	if key == "" {
		return false
	}
	e, ok := n.focusables[key]
	return ok && e.Focusable
}

func (n *Navigator) setCurrentFocusedKey(key string, details FocusDetails) {
	if key == n.focusKey {
		return
	}
	prev := n.focusables[n.focusKey]
	n.focusKey = key
	n.logger.V(1).Info("focus moved", "focusKey", key, "event", details.Event)

	if prev != nil {
		if prev.OnUpdateFocus != nil {
			prev.OnUpdateFocus(false)
		}
		if prev.OnBlur != nil {
			prev.OnBlur(LayoutOf(prev.Node), details)
		}
	}
	if next := n.focusables[key]; next != nil {
		if next.OnUpdateFocus != nil {
			next.OnUpdateFocus(true)
		}
		if next.OnFocus != nil {
			next.OnFocus(LayoutOf(next.Node), details)
		}
	}
	n.updateParentsHasFocusedChild(key)
	n.updateParentsLastFocusedChild(key)
}

// ancestors returns the registered ancestors of key, nearest first.
func (n *Navigator) ancestors(key string) []string {
	var parents []string
	e := n.focusables[key]
	for e != nil && len(parents) < len(n.focusables) {
		parent, ok := n.focusables[e.ParentFocusKey]
		if !ok {
			break
		}
		parents = append(parents, parent.FocusKey)
		e = parent
	}
	return parents
}

func (n *Navigator) updateParentsHasFocusedChild(key string) {
	parents := n.ancestors(key)
	for _, old := range n.parentsHavingFocusedChild {
		if slices.Contains(parents, old) {
			continue
		}
		if e, ok := n.focusables[old]; ok && e.TrackChildren && e.OnUpdateHasFocusedChild != nil {
			e.OnUpdateHasFocusedChild(false)
		}
	}
	for _, p := range parents {
		if slices.Contains(n.parentsHavingFocusedChild, p) {
			continue
		}
		if e := n.focusables[p]; e.TrackChildren && e.OnUpdateHasFocusedChild != nil {
			e.OnUpdateHasFocusedChild(true)
		}
	}
	n.parentsHavingFocusedChild = parents
}

func (n *Navigator) updateParentsLastFocusedChild(key string) {
	child := key
	for _, p := range n.ancestors(key) {
		if e := n.focusables[p]; e.SaveLastFocusedChild {
			e.lastFocusedChildKey = child
		}
		child = p
	}
}
