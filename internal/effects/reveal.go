package effects

// RevealThreshold is the visible fraction at which an element is revealed.
const RevealThreshold = 0.16

// RevealClass marks a revealed element.
const RevealClass = "is-in"

// Reveal fades elements in the first time they scroll into view. Once
// revealed an element stays revealed and is no longer observed.
type Reveal struct {
	observer Observer
	pending  int
}

// MountReveal observes items and returns the running effect.
func MountReveal(newObserver ObserverFactory, items []Element) *Reveal {
	r := &Reveal{}
	r.observer = newObserver([]float64{RevealThreshold}, r.handle)
	for _, el := range items {
		if el == nil {
			continue
		}
		r.observer.Observe(el)
		r.pending++
	}
	return r
}

// Pending returns how many elements are still waiting to be revealed.
func (r *Reveal) Pending() int { return r.pending }

func (r *Reveal) handle(entries []Entry) {
	for _, e := range entries {
		// Entries queued before Unobserve can still arrive.
		if !e.Intersecting || !live(e) || e.Target.HasClass(RevealClass) {
			continue
		}
		e.Target.AddClass(RevealClass)
		r.observer.Unobserve(e.Target)
		r.pending--
	}
}
