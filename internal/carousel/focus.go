// Package carousel maps the horizontal scroll position of the listing carousel to the focused card.
package carousel

import "math"

// DefaultCardWidthFraction is the share of the viewport taken by one card.
const DefaultCardWidthFraction = 0.8

// FocusedIndex returns the index of the card in view for a horizontal scroll offset.
// Halves round up. The result is not bounds checked; a non-positive card width yields -1.
func FocusedIndex(scrollOffsetX, cardWidthFraction, viewportWidth float64) int {
	cardWidth := viewportWidth * cardWidthFraction
	if !(cardWidth > 0) {
		return -1
	}

	pos := math.Floor(scrollOffsetX/cardWidth + 0.5)
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return -1
	}
	if pos > math.MaxInt32 || pos < math.MinInt32 {
		return -1
	}

	return int(pos)
}

// FocusedID resolves index against the carousel ids. Out-of-range indexes report false
// and the caller keeps its previous focus.
func FocusedID(ids []int64, index int) (int64, bool) {
	if index < 0 || index >= len(ids) {
		return 0, false
	}
	return ids[index], true
}
