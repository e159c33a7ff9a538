package focus

// RootFocusKey is the parent key of top-level registrations.
const RootFocusKey = "SN:ROOT"

// Direction is a navigation direction.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionLeft, DirectionRight, DirectionUp, DirectionDown:
		return true
	}
	return false
}

// Rect represents a rectangle for focus geometry calculations.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (x, y float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// IsValid returns true if the rect has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Right > r.Left && r.Bottom > r.Top
}

// Node is a rendered element a registration is attached to. Pointer types
// are typical. Nodes of comparable types are compared with ==.
type Node interface {
	FocusRect() Rect
}

// Box is a Node with fixed geometry.
type Box struct {
	Rect Rect
}

// NewBox returns a Box covering the given edges.
func NewBox(left, top, right, bottom float64) *Box {
	return &Box{Rect: Rect{Left: left, Top: top, Right: right, Bottom: bottom}}
}

// FocusRect implements Node.
func (b *Box) FocusRect() Rect { return b.Rect }

// Layout describes where a focusable item is on screen when it gains or
// loses focus.
type Layout struct {
	X, Y          float64
	Width, Height float64
	Node          Node
}

// LayoutOf measures node. A nil node yields the zero Layout.
func LayoutOf(node Node) Layout {
	if node == nil {
		return Layout{}
	}
	r := node.FocusRect()
	return Layout{
		X:      r.Left,
		Y:      r.Top,
		Width:  r.Right - r.Left,
		Height: r.Bottom - r.Top,
		Node:   node,
	}
}

// KeyPressDetails accompanies key press callbacks.
type KeyPressDetails struct {
	// PressedKeys counts keydown events per key since the key was last
	// released, which lets handlers detect long presses.
	PressedKeys map[string]int
}

// FocusDetails accompanies focus requests and focus/blur callbacks.
type FocusDetails struct {
	// Event names what caused the change, e.g. "keydown". Empty for
	// programmatic focus.
	Event string
	// Data carries caller-defined values through SetFocus.
	Data map[string]any
}

// Handler types carried by registrations. Registries call them on the UI
// thread.
type (
	EnterPressHandler   func(details KeyPressDetails)
	EnterReleaseHandler func()
	// ArrowPressHandler returns false to stop the registry from moving
	// focus in response to the key.
	ArrowPressHandler   func(direction Direction, details KeyPressDetails) bool
	ArrowReleaseHandler func(direction Direction)
	FocusHandler        func(layout Layout, details FocusDetails)
	BlurHandler         func(layout Layout, details FocusDetails)
	// StateHandler receives focus state pushed by the registry.
	StateHandler func(value bool)
)

// Registration is the full snapshot submitted by AddFocusable.
type Registration struct {
	FocusKey               string
	Node                   Node
	ParentFocusKey         string
	PreferredChildFocusKey string

	Focusable               bool
	SaveLastFocusedChild    bool
	TrackChildren           bool
	IsFocusBoundary         bool
	FocusBoundaryDirections []Direction
	AutoRestoreFocus        bool
	ForceFocus              bool

	OnEnterPress   EnterPressHandler
	OnEnterRelease EnterReleaseHandler
	OnArrowPress   ArrowPressHandler
	OnArrowRelease ArrowReleaseHandler
	OnFocus        FocusHandler
	OnBlur         BlurHandler

	OnUpdateFocus           StateHandler
	OnUpdateHasFocusedChild StateHandler
}

// Update is the partial snapshot submitted by UpdateFocusable. Its fields
// replace the corresponding registration fields; the parent key, the
// remaining flags and the state callbacks are fixed at registration time.
type Update struct {
	Node                    Node
	PreferredChildFocusKey  string
	Focusable               bool
	IsFocusBoundary         bool
	FocusBoundaryDirections []Direction

	OnEnterPress   EnterPressHandler
	OnEnterRelease EnterReleaseHandler
	OnArrowPress   ArrowPressHandler
	OnArrowRelease ArrowReleaseHandler
	OnFocus        FocusHandler
	OnBlur         BlurHandler
}

// Registry is the spatial navigation service focusable elements report to.
// Implementations define the outcome of contract misuse such as adding a
// key twice; RemoveFocusable must tolerate unknown keys.
type Registry interface {
	AddFocusable(reg Registration)
	UpdateFocusable(focusKey string, update Update)
	RemoveFocusable(focusKey string)
	SetFocus(focusKey string, details FocusDetails)
}
