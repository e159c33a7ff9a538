package focus

import (
	"maps"
	"math"
)

// Key is a navigation key.
type Key string

const (
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyEnter Key = "enter"
)

// Direction returns the direction of an arrow key.
func (k Key) Direction() (Direction, bool) {
	d := Direction(k)
	return d, d.Valid()
}

// ParseKey converts a key name to a Key.
func ParseKey(name string) (Key, bool) {
	k := Key(name)
	if _, ok := k.Direction(); ok || k == KeyEnter {
		return k, true
	}
	return "", false
}

// KeyDown handles a key press. With a key throttle configured, repeated
// presses inside the window are dropped.
func (n *Navigator) KeyDown(key Key) {
	n.pressedKeys[string(key)]++
	if n.keyDown != nil {
		n.keyDown.Call(key)
		return
	}
	n.handleKeyDown(key)
}

// KeyUp handles a key release and resets the key throttle.
func (n *Navigator) KeyUp(key Key) {
	delete(n.pressedKeys, string(key))
	if n.keyDown != nil {
		n.keyDown.Cancel()
	}

	current := n.focusables[n.focusKey]
	if current == nil {
		return
	}
	if key == KeyEnter {
		if current.OnEnterRelease != nil {
			current.OnEnterRelease()
		}
		return
	}
	if direction, ok := key.Direction(); ok && current.OnArrowRelease != nil {
		current.OnArrowRelease(direction)
	}
}

func (n *Navigator) handleKeyDown(key Key) {
	if n.focusKey == "" {
		n.SetFocus("", FocusDetails{Event: "keydown"})
		return
	}
	current := n.focusables[n.focusKey]
	details := KeyPressDetails{PressedKeys: maps.Clone(n.pressedKeys)}

	if key == KeyEnter {
		if current != nil && current.OnEnterPress != nil {
			current.OnEnterPress(details)
		}
		return
	}

	direction, ok := key.Direction()
	if !ok {
		return
	}
	if current != nil && current.OnArrowPress != nil && !current.OnArrowPress(direction, details) {
		n.logger.V(1).Info("navigation prevented by onArrowPress", "focusKey", n.focusKey, "direction", direction)
		return
	}
	n.NavigateByDirection(direction, FocusDetails{Event: "keydown"})
}

// NavigateByDirection moves focus from the focused item toward direction
// without consulting its arrow handler.
func (n *Navigator) NavigateByDirection(direction Direction, details FocusDetails) {
	if !direction.Valid() {
		return
	}
	if n.rtl {
		direction = mirror(direction)
	}
	if n.focusKey == "" {
		n.SetFocus("", details)
		return
	}
	n.smartNavigate(direction, n.focusKey, details, len(n.focusables))
}

// smartNavigate looks for the best sibling of fromKey toward direction,
// bubbling up one scope at a time until a candidate is found, a focus
// boundary stops the search, or the root is reached.
func (n *Navigator) smartNavigate(direction Direction, fromKey string, details FocusDetails, depth int) {
	from, ok := n.focusables[fromKey]
	if !ok || depth < 0 {
		return
	}

	siblings := make([]*entry, 0, len(n.order))
	for _, key := range n.order {
		if e := n.focusables[key]; e.ParentFocusKey == from.ParentFocusKey && e.Focusable {
			siblings = append(siblings, e)
		}
	}

	if best := n.bestCandidate(from, siblings, direction); best != nil {
		n.logger.V(1).Info("navigate", "from", fromKey, "to", best.FocusKey, "direction", direction)
		n.SetFocus(best.FocusKey, details)
		return
	}

	parent, ok := n.focusables[from.ParentFocusKey]
	if !ok {
		n.logger.V(1).Info("no candidate", "from", fromKey, "direction", direction)
		return
	}
	if parent.IsFocusBoundary && blocks(parent.FocusBoundaryDirections, direction) {
		n.logger.V(1).Info("stopped at focus boundary", "boundary", parent.FocusKey, "direction", direction)
		return
	}
	n.smartNavigate(direction, parent.FocusKey, details, depth-1)
}

// bestCandidate picks the sibling nearest to from toward direction. When
// from has no usable geometry it falls back to linear traversal in
// registration order.
func (n *Navigator) bestCandidate(from *entry, siblings []*entry, direction Direction) *entry {
	fromRect := from.rect()
	if !fromRect.IsValid() {
		index := -1
		for i, e := range siblings {
			if e == from {
				index = i
				break
			}
		}
		if index == -1 || len(siblings) < 2 {
			return nil
		}
		return siblings[wrapIndex(index+linearDelta(direction), len(siblings))]
	}

	var best *entry
	bestScore := math.MaxFloat64
	for _, candidate := range siblings {
		if candidate == from {
			continue
		}
		rect := candidate.rect()
		if !rect.IsValid() || !isInDirection(fromRect, rect, direction) {
			continue
		}
		if score := directionalScore(fromRect, rect, direction); score < bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best
}
