//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/Zachkp/folio/internal/effects"
)

// intersectionObserver wraps IntersectionObserver.
type intersectionObserver struct {
	v  js.Value
	fn js.Func
}

// NewObserver is an effects.ObserverFactory backed by IntersectionObserver.
// Browsers without it get an observer that reports every element fully
// visible as soon as it is observed.
func NewObserver(thresholds []float64, callback func([]effects.Entry)) effects.Observer {
	ctor := js.Global().Get("IntersectionObserver")
	if ctor.Type() != js.TypeFunction {
		return visibleObserver{callback: callback}
	}
	o := &intersectionObserver{}
	o.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		list := args[0]
		entries := make([]effects.Entry, 0, list.Length())
		for i := range list.Length() {
			en := list.Index(i)
			entries = append(entries, effects.Entry{
				Target:       element(Wrap(en.Get("target"))),
				Ratio:        en.Get("intersectionRatio").Float(),
				Intersecting: en.Get("isIntersecting").Bool(),
			})
		}
		callback(entries)
		return nil
	})
	th := make([]any, len(thresholds))
	for i, t := range thresholds {
		th[i] = t
	}
	o.v = ctor.New(o.fn, map[string]any{"threshold": th})
	return o
}

func (o *intersectionObserver) Observe(el effects.Element) {
	if e, ok := el.(*Element); ok {
		o.v.Call("observe", e.v)
	}
}

func (o *intersectionObserver) Unobserve(el effects.Element) {
	if e, ok := el.(*Element); ok {
		o.v.Call("unobserve", e.v)
	}
}

type visibleObserver struct {
	callback func([]effects.Entry)
}

func (o visibleObserver) Observe(el effects.Element) {
	o.callback([]effects.Entry{{Target: el, Ratio: 1, Intersecting: true}})
}

func (visibleObserver) Unobserve(effects.Element) {}
