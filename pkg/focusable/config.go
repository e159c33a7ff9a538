package focusable

import "github.com/go-drift/spatialnav/pkg/focus"

// Handler types receive the configured ExtraProps as props.
type (
	EnterPressHandler[P any]   func(props P, details focus.KeyPressDetails)
	EnterReleaseHandler[P any] func(props P)
	// ArrowPressHandler returns false to keep the registry from moving focus.
	ArrowPressHandler[P any]   func(direction focus.Direction, props P, details focus.KeyPressDetails) bool
	ArrowReleaseHandler[P any] func(direction focus.Direction, props P)
	FocusHandler[P any]        func(layout focus.Layout, props P, details focus.FocusDetails)
	BlurHandler[P any]         func(layout focus.Layout, props P, details focus.FocusDetails)
)

// Config configures a Handle. Every field is optional.
//
// Flags whose default is true are pointers so that an unset flag can be told
// apart from an explicit false. Use [Bool] to set them.
type Config[P any] struct {
	// Focusable defaults to true.
	Focusable *bool
	// SaveLastFocusedChild defaults to true.
	SaveLastFocusedChild *bool
	// AutoRestoreFocus defaults to true.
	AutoRestoreFocus *bool

	TrackChildren           bool
	ForceFocus              bool
	IsFocusBoundary         bool
	FocusBoundaryDirections []focus.Direction

	// FocusKey is read once, when the handle is created. Empty means a
	// generated key.
	FocusKey               string
	PreferredChildFocusKey string

	OnEnterPress   EnterPressHandler[P]
	OnEnterRelease EnterReleaseHandler[P]
	// OnArrowPress defaults to allowing navigation.
	OnArrowPress   ArrowPressHandler[P]
	OnArrowRelease ArrowReleaseHandler[P]
	OnFocus        FocusHandler[P]
	OnBlur         BlurHandler[P]

	// ExtraProps is passed to every handler.
	ExtraProps P
}

// Bool returns a pointer to v, for the optional flags of Config.
func Bool(v bool) *bool {
	return &v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (c *Config[P]) focusable() bool            { return boolOr(c.Focusable, true) }
func (c *Config[P]) saveLastFocusedChild() bool { return boolOr(c.SaveLastFocusedChild, true) }
func (c *Config[P]) autoRestoreFocus() bool     { return boolOr(c.AutoRestoreFocus, true) }
