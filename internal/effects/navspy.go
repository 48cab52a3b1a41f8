package effects

import "strings"

// NavSpyThresholds are the visible fractions at which sections report in.
var NavSpyThresholds = []float64{0.25, 0.5, 0.75}

// NavSpy marks the navigation link of the most visible section as current.
// It never retires; every notification batch is re-evaluated.
type NavSpy struct {
	links  []Element
	linkOf map[string]Element
	order  map[string]int
}

// MountNavSpy wires links (anchors whose href is "#<section id>") to
// sections. sections must be in document order; it decides ties.
func MountNavSpy(newObserver ObserverFactory, links, sections []Element) *NavSpy {
	s := &NavSpy{
		linkOf: make(map[string]Element),
		order:  make(map[string]int),
	}
	for _, a := range links {
		if a == nil {
			continue
		}
		id, ok := strings.CutPrefix(a.Attr("href"), "#")
		if !ok {
			continue
		}
		s.links = append(s.links, a)
		s.linkOf[id] = a
	}

	obs := newObserver(NavSpyThresholds, s.handle)
	for i, sec := range sections {
		if sec == nil {
			continue
		}
		if _, linked := s.linkOf[sec.ID()]; !linked {
			continue
		}
		s.order[sec.ID()] = i
		obs.Observe(sec)
	}
	return s
}

// Pick returns the entry that should become current: the intersecting
// entry with the highest ratio, ties going to the section earliest in
// document order. It reports false when nothing intersects.
func (s *NavSpy) Pick(entries []Entry) (Entry, bool) {
	var best Entry
	found := false
	for _, e := range entries {
		if !e.Intersecting || !live(e) {
			continue
		}
		if !found || e.Ratio > best.Ratio ||
			(e.Ratio == best.Ratio && s.rank(e.Target) < s.rank(best.Target)) {
			best = e
			found = true
		}
	}
	return best, found
}

func (s *NavSpy) rank(el Element) int {
	if i, ok := s.order[el.ID()]; ok {
		return i
	}
	return len(s.order)
}

func (s *NavSpy) handle(entries []Entry) {
	best, ok := s.Pick(entries)
	if !ok {
		return
	}
	for _, a := range s.links {
		a.RemoveAttr("aria-current")
	}
	if a, ok := s.linkOf[best.Target.ID()]; ok {
		a.SetAttr("aria-current", "true")
	}
}
