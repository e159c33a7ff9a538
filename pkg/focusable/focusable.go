package focusable

import (
	"reflect"

	"github.com/go-drift/spatialnav/pkg/core"
	"github.com/go-drift/spatialnav/pkg/focus"
	"github.com/go-drift/spatialnav/pkg/ids"
)

//go:generate mockgen -package=focusable -destination=mock_registry_test.go github.com/go-drift/spatialnav/pkg/focus Registry

// KeyPrefix prefixes generated focus keys.
const KeyPrefix = "sn:focusable-item-"

// Handle keeps one element's registration in sync with its node and
// configuration.
//
// Handle is not safe for concurrent use. Drive it from the same thread as
// its registry.
type Handle[P any] struct {
	registry       focus.Registry
	focusKey       string
	parentFocusKey string

	// cfg is the live configuration. The adapters handed to the registry
	// read it on every call.
	cfg  Config[P]
	node focus.Node

	registered bool
	// removed is set once RemoveFocusable has been sent and no add has
	// followed it.
	removed  bool
	disposed bool

	focused         *core.Signal[bool]
	hasFocusedChild *core.Signal[bool]
}

// New creates a handle reporting to registry. The focus key is cfg.FocusKey
// or a generated one, and the parent key is read from scope. A key is drawn
// from the generator either way. When scope is non-nil, disposing it
// disposes the handle.
func New[P any](scope *core.Scope, registry focus.Registry, cfg Config[P]) *Handle[P] {
	generated := ids.Unique(KeyPrefix)
	if cfg.FocusKey == "" {
		cfg.FocusKey = generated
	}

	create := func() *Handle[P] {
		return &Handle[P]{
			registry:        registry,
			focusKey:        cfg.FocusKey,
			parentFocusKey:  ParentFocusKey(scope),
			cfg:             cfg,
			focused:         core.NewSignal(false),
			hasFocusedChild: core.NewSignal(false),
		}
	}
	if scope == nil {
		return create()
	}
	return core.UseController(scope, create)
}

// Create is New with the process-wide navigator.
func Create[P any](scope *core.Scope, cfg Config[P]) *Handle[P] {
	return New(scope, focus.Default(), cfg)
}

// Ref attaches node, or detaches the current node when node is nil. The
// first attach registers the handle; detaching unregisters it. Attaching a
// different node while registered sends an update.
func (h *Handle[P]) Ref(node focus.Node) {
	if h.disposed || sameNode(node, h.node) {
		return
	}
	h.node = node

	switch {
	case node == nil:
		if h.registered {
			h.remove()
		}
	case !h.registered:
		h.add()
	default:
		h.update()
	}
}

// sameNode reports whether a and b are the same node. Values of
// non-comparable types never match, so attaching one always counts as a
// change.
func sameNode(a, b focus.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

// Node returns the attached node, or nil.
func (h *Handle[P]) Node() focus.Node {
	return h.node
}

// Configure replaces the configuration. The focus key cannot change; a
// different cfg.FocusKey is ignored. While registered the new configuration
// is sent to the registry as an update.
func (h *Handle[P]) Configure(cfg Config[P]) {
	if h.disposed {
		return
	}
	cfg.FocusKey = h.focusKey
	h.cfg = cfg
	if h.registered {
		h.update()
	}
}

// Config returns the live configuration.
func (h *Handle[P]) Config() Config[P] {
	return h.cfg
}

// FocusSelf asks the registry to focus this handle's key. Only the first
// details value is used.
func (h *Handle[P]) FocusSelf(details ...focus.FocusDetails) {
	var d focus.FocusDetails
	if len(details) > 0 {
		d = details[0]
	}
	h.registry.SetFocus(h.focusKey, d)
}

// FocusKey returns the key resolved at creation.
func (h *Handle[P]) FocusKey() string { return h.focusKey }

// ParentFocusKey returns the parent key resolved at creation.
func (h *Handle[P]) ParentFocusKey() string { return h.parentFocusKey }

// Focusable reports the configured focusable flag.
func (h *Handle[P]) Focusable() bool { return h.cfg.focusable() }

// Registered reports whether the registry currently holds this handle.
func (h *Handle[P]) Registered() bool { return h.registered }

// Focused reports whether the registry last said this key holds focus.
func (h *Handle[P]) Focused() bool { return h.focused.Value() }

// HasFocusedChild reports whether the registry last said a descendant of
// this key holds focus.
func (h *Handle[P]) HasFocusedChild() bool { return h.hasFocusedChild.Value() }

// FocusedSignal exposes the focused state for subscription.
func (h *Handle[P]) FocusedSignal() *core.Signal[bool] { return h.focused }

// HasFocusedChildSignal exposes the descendant focus state for subscription.
func (h *Handle[P]) HasFocusedChildSignal() *core.Signal[bool] { return h.hasFocusedChild }

// Dispose removes the registration. It sends RemoveFocusable even if the
// handle never registered, unless a removal has already been sent. Later
// calls are no-ops.
func (h *Handle[P]) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	if !h.removed {
		h.remove()
	}
	h.node = nil
}

func (h *Handle[P]) add() {
	h.registered = true
	h.removed = false
	h.registry.AddFocusable(focus.Registration{
		FocusKey:                h.focusKey,
		Node:                    h.node,
		ParentFocusKey:          h.parentFocusKey,
		PreferredChildFocusKey:  h.cfg.PreferredChildFocusKey,
		Focusable:               h.cfg.focusable(),
		SaveLastFocusedChild:    h.cfg.saveLastFocusedChild(),
		TrackChildren:           h.cfg.TrackChildren,
		IsFocusBoundary:         h.cfg.IsFocusBoundary,
		FocusBoundaryDirections: h.cfg.FocusBoundaryDirections,
		AutoRestoreFocus:        h.cfg.autoRestoreFocus(),
		ForceFocus:              h.cfg.ForceFocus,
		OnEnterPress:            h.onEnterPress,
		OnEnterRelease:          h.onEnterRelease,
		OnArrowPress:            h.onArrowPress,
		OnArrowRelease:          h.onArrowRelease,
		OnFocus:                 h.onFocus,
		OnBlur:                  h.onBlur,
		OnUpdateFocus:           h.focused.Set,
		OnUpdateHasFocusedChild: h.hasFocusedChild.Set,
	})
}

func (h *Handle[P]) update() {
	h.registry.UpdateFocusable(h.focusKey, focus.Update{
		Node:                    h.node,
		PreferredChildFocusKey:  h.cfg.PreferredChildFocusKey,
		Focusable:               h.cfg.focusable(),
		IsFocusBoundary:         h.cfg.IsFocusBoundary,
		FocusBoundaryDirections: h.cfg.FocusBoundaryDirections,
		OnEnterPress:            h.onEnterPress,
		OnEnterRelease:          h.onEnterRelease,
		OnArrowPress:            h.onArrowPress,
		OnArrowRelease:          h.onArrowRelease,
		OnFocus:                 h.onFocus,
		OnBlur:                  h.onBlur,
	})
}

func (h *Handle[P]) remove() {
	h.registered = false
	h.removed = true
	h.registry.RemoveFocusable(h.focusKey)
}

// Registry-facing adapters. They look up the handler and props at call time.

func (h *Handle[P]) onEnterPress(details focus.KeyPressDetails) {
	if fn := h.cfg.OnEnterPress; fn != nil {
		fn(h.cfg.ExtraProps, details)
	}
}

func (h *Handle[P]) onEnterRelease() {
	if fn := h.cfg.OnEnterRelease; fn != nil {
		fn(h.cfg.ExtraProps)
	}
}

func (h *Handle[P]) onArrowPress(direction focus.Direction, details focus.KeyPressDetails) bool {
	if fn := h.cfg.OnArrowPress; fn != nil {
		return fn(direction, h.cfg.ExtraProps, details)
	}
	return true
}

func (h *Handle[P]) onArrowRelease(direction focus.Direction) {
	if fn := h.cfg.OnArrowRelease; fn != nil {
		fn(direction, h.cfg.ExtraProps)
	}
}

func (h *Handle[P]) onFocus(layout focus.Layout, details focus.FocusDetails) {
	if fn := h.cfg.OnFocus; fn != nil {
		fn(layout, h.cfg.ExtraProps, details)
	}
}

func (h *Handle[P]) onBlur(layout focus.Layout, details focus.FocusDetails) {
	if fn := h.cfg.OnBlur; fn != nil {
		fn(layout, h.cfg.ExtraProps, details)
	}
}
