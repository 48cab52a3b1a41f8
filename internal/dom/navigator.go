//go:build js && wasm

package dom

import (
	"syscall/js"
	"time"
)

// Navigator implements effects.Navigator for the page.
type Navigator struct{}

func (Navigator) OpenExternal(href string) {
	window().Call("open", href, "_blank", "noreferrer")
}

// ScrollTo scrolls to the element with the given id. Smooth scrolls run
// inside a view transition when the browser has them.
func (Navigator) ScrollTo(id string, smooth bool) bool {
	el := ByID(id)
	if el == nil {
		return false
	}
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	scroll := func() {
		el.v.Call("scrollIntoView", map[string]any{"behavior": behavior, "block": "start"})
	}
	doc := document()
	if !smooth || doc.Get("startViewTransition").Type() != js.TypeFunction {
		scroll()
		return true
	}
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn.Release()
		scroll()
		return nil
	})
	doc.Call("startViewTransition", fn)
	return true
}

func (Navigator) Redirect(href string) {
	window().Get("location").Set("href", href)
}

// Timers implements effects.Timers with setTimeout.
type Timers struct{}

func (Timers) AfterFunc(d time.Duration, fn func()) func() {
	settled := false
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		if !settled {
			settled = true
			cb.Release()
			fn()
		}
		return nil
	})
	id := window().Call("setTimeout", cb, d.Milliseconds())
	return func() {
		if settled {
			return
		}
		settled = true
		window().Call("clearTimeout", id)
		cb.Release()
	}
}

// Dialog is a <dialog> element.
type Dialog struct {
	*Element
}

// NewDialog wraps el, or returns nil when el is missing.
func NewDialog(el *Element) *Dialog {
	if el == nil {
		return nil
	}
	return &Dialog{Element: el}
}

// ShowModal opens the dialog. It reports false when the browser has no
// modal dialog support.
func (d *Dialog) ShowModal() bool {
	if d.v.Get("showModal").Type() != js.TypeFunction {
		return false
	}
	if !d.IsOpen() {
		d.v.Call("showModal")
	}
	return true
}

func (d *Dialog) Close() { d.v.Call("close") }
func (d *Dialog) IsOpen() bool { return d.v.Get("open").Bool() }
