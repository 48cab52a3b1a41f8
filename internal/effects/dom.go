// Package effects implements the page's cosmetic behaviors: scroll reveals,
// navigation highlighting, animated counters, the header progress bar, the
// trailing cursor, magnetic buttons, tilting cards, the command palette and
// project dialog keyboard handling, and the copy-email toast.
//
// Each effect is written against small interfaces (Element, Observer,
// Source, frame.Scheduler) so the browser host binds them to the real DOM
// while tests drive them with fakes.
package effects

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right() && y >= r.Top && y <= r.Bottom()
}

// Element is the subset of a DOM element the effects touch.
type Element interface {
	ID() string
	// Attr returns the attribute value, or "" when it is absent.
	Attr(name string) string
	SetAttr(name, value string)
	RemoveAttr(name string)
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	SetText(text string)
	SetStyle(prop, value string)
	Rect() Rect
	// Closest returns the nearest ancestor (or the element itself)
	// matching selector, or nil.
	Closest(selector string) Element
	// Connected reports whether the element is still in the document.
	Connected() bool
}

// Target is an element that also emits its own events.
type Target interface {
	Element
	Source
}

// Entry is one visibility notification for an observed element.
type Entry struct {
	Target       Element
	Ratio        float64
	Intersecting bool
}

// Observer watches elements for visibility changes. The host delivers
// entries in batches to the callback given to the ObserverFactory.
type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
}

// ObserverFactory creates an Observer that notifies callback whenever an
// observed element's visible fraction crosses one of thresholds.
type ObserverFactory func(thresholds []float64, callback func([]Entry)) Observer

// live reports whether an entry's target can still be acted upon.
func live(e Entry) bool {
	return e.Target != nil && e.Target.Connected()
}
