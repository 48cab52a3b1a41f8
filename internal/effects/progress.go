package effects

import (
	"math"
	"strconv"
)

// ScrollMetrics is the document scroll state read on every scroll event.
type ScrollMetrics struct {
	ScrollY        float64
	ScrollHeight   float64
	ViewportHeight float64
}

// ElevateOffset is how far the page must scroll before the header lifts.
const ElevateOffset = 6

// ProgressPercent is how far through the document the reader has scrolled.
func ProgressPercent(m ScrollMetrics) float64 {
	maxScroll := math.Max(1, m.ScrollHeight-m.ViewportHeight)
	return math.Max(0, math.Min(100, m.ScrollY/maxScroll*100))
}

// MountHeaderProgress keeps the header's "data-elevate" flag and the
// reading progress bar in sync with scrolling. It applies the current
// state immediately.
func MountHeaderProgress(window Source, header, bar Element, metrics func() ScrollMetrics) (off func()) {
	if header == nil || bar == nil || metrics == nil {
		return func() {}
	}
	update := func(Event) {
		m := metrics()
		header.SetAttr("data-elevate", strconv.FormatBool(m.ScrollY > ElevateOffset))
		bar.SetStyle("width", strconv.FormatFloat(ProgressPercent(m), 'f', -1, 64)+"%")
	}
	off = window.On(EventScroll, update)
	update(Event{Type: EventScroll})
	return off
}
