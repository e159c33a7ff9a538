package focus

import (
	"math"
	"sort"
)

// isInDirection checks if target rect is in the specified direction from source.
func isInDirection(source, target Rect, direction Direction) bool {
	sourceCX, sourceCY := source.Center()
	targetCX, targetCY := target.Center()

	switch direction {
	case DirectionUp:
		return targetCY < sourceCY
	case DirectionDown:
		return targetCY > sourceCY
	case DirectionLeft:
		return targetCX < sourceCX
	case DirectionRight:
		return targetCX > sourceCX
	}
	return false
}

// directionalScore calculates a score for how good a target is for directional focus.
// Lower scores are better. Combines distance with alignment penalty.
func directionalScore(source, target Rect, direction Direction) float64 {
	sourceCX, sourceCY := source.Center()
	targetCX, targetCY := target.Center()

	var primaryDist, crossDist float64

	switch direction {
	case DirectionUp, DirectionDown:
		primaryDist = math.Abs(targetCY - sourceCY)
		crossDist = math.Abs(targetCX - sourceCX)
	case DirectionLeft, DirectionRight:
		primaryDist = math.Abs(targetCX - sourceCX)
		crossDist = math.Abs(targetCY - sourceCY)
	}

	// Weight cross-axis distance more heavily to prefer aligned elements
	return primaryDist + crossDist*2
}

// linearDelta returns +1 or -1 for linear focus traversal based on direction.
func linearDelta(direction Direction) int {
	if direction == DirectionUp || direction == DirectionLeft {
		return -1
	}
	return 1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

// mirror swaps left and right.
func mirror(direction Direction) Direction {
	switch direction {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return direction
}

// blocks reports whether a boundary with the given directions stops
// navigation toward direction. An empty set blocks every direction.
func blocks(boundary []Direction, direction Direction) bool {
	if len(boundary) == 0 {
		return true
	}
	for _, d := range boundary {
		if d == direction {
			return true
		}
	}
	return false
}

// sortByPosition orders entries top to bottom, then left to right. Entries
// without geometry keep their relative order after those with geometry.
func sortByPosition(entries []*entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].rect(), entries[j].rect()
		if a.IsValid() != b.IsValid() {
			return a.IsValid()
		}
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.Left < b.Left
	})
}
