//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/Zachkp/folio/internal/effects"
)

// passive lists events whose listeners never cancel the default action.
var passive = map[effects.EventType]bool{
	effects.EventScroll:      true,
	effects.EventResize:      true,
	effects.EventPointerMove: true,
}

// source is an effects.Source over a JavaScript event target such as
// window or document.
type source struct {
	v js.Value
}

func (s source) On(t effects.EventType, h effects.Handler) func() {
	return listen(s.v, t, h)
}

// Window returns the window as an event source.
func Window() effects.Source { return source{v: window()} }

// Document returns the document as an event source.
func Document() effects.Source { return source{v: document()} }

func listen(v js.Value, t effects.EventType, h effects.Handler) func() {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			h(convertEvent(t, args[0]))
		}
		return nil
	})
	opts := map[string]any{"passive": passive[t]}
	v.Call("addEventListener", string(t), fn, opts)
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		v.Call("removeEventListener", string(t), fn, opts)
		fn.Release()
	}
}

func convertEvent(t effects.EventType, ev js.Value) effects.Event {
	out := effects.Event{
		Type:    t,
		Ctrl:    ev.Get("ctrlKey").Truthy(),
		Meta:    ev.Get("metaKey").Truthy(),
		Prevent: func() { ev.Call("preventDefault") },
		Stop:    func() { ev.Call("stopPropagation") },
	}
	if tgt := ev.Get("target"); tgt.Truthy() && tgt.Get("nodeType").Int() == 1 {
		out.Target = &Element{v: tgt}
	}
	if x := ev.Get("clientX"); x.Type() == js.TypeNumber {
		out.ClientX = x.Float()
		out.ClientY = ev.Get("clientY").Float()
	}
	if k := ev.Get("key"); k.Type() == js.TypeString {
		out.Key = k.String()
	}
	return out
}
