//go:build js && wasm

// Package dom binds the effects and the particle engine to the browser
// through syscall/js.
package dom

import (
	"syscall/js"

	"github.com/Zachkp/folio/internal/effects"
)

// Element is a DOM element. It implements effects.Target.
type Element struct {
	v js.Value
}

// Wrap returns v as an Element, or nil when v is null or undefined.
func Wrap(v js.Value) *Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v}
}

// Value returns the underlying JavaScript object.
func (e *Element) Value() js.Value { return e.v }

func (e *Element) ID() string { return e.v.Get("id").String() }

func (e *Element) Attr(name string) string {
	a := e.v.Call("getAttribute", name)
	if a.IsNull() {
		return ""
	}
	return a.String()
}

func (e *Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }
func (e *Element) RemoveAttr(name string) { e.v.Call("removeAttribute", name) }
func (e *Element) AddClass(name string) { e.v.Get("classList").Call("add", name) }
func (e *Element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) SetText(text string) { e.v.Set("textContent", text) }

// SetStyle sets an inline style property; an empty value removes it.
func (e *Element) SetStyle(prop, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", prop)
		return
	}
	style.Call("setProperty", prop, value)
}

func (e *Element) Rect() effects.Rect {
	r := e.v.Call("getBoundingClientRect")
	return effects.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *Element) Closest(selector string) effects.Element {
	if found := Wrap(e.v.Call("closest", selector)); found != nil {
		return found
	}
	return nil
}

func (e *Element) Connected() bool { return e.v.Get("isConnected").Bool() }

// On implements effects.Source.
func (e *Element) On(t effects.EventType, h effects.Handler) func() {
	return listen(e.v, t, h)
}

// Query returns the first element matching selector, or nil.
func Query(selector string) *Element {
	return Wrap(document().Call("querySelector", selector))
}

// QueryAll returns every element matching selector, in document order.
func QueryAll(selector string) []*Element {
	list := document().Call("querySelectorAll", selector)
	out := make([]*Element, 0, list.Length())
	for i := range list.Length() {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}

// ByID returns the element with the given id, or nil.
func ByID(id string) *Element {
	return Wrap(document().Call("getElementById", id))
}

func window() js.Value { return js.Global() }
func document() js.Value { return js.Global().Get("document") }

// element converts e to the interface, keeping nil as a nil interface.
func element(e *Element) effects.Element {
	if e == nil {
		return nil
	}
	return e
}

func target(e *Element) effects.Target {
	if e == nil {
		return nil
	}
	return e
}

func elements(list []*Element) []effects.Element {
	out := make([]effects.Element, len(list))
	for i, e := range list {
		out[i] = e
	}
	return out
}

func targets(list []*Element) []effects.Target {
	out := make([]effects.Target, len(list))
	for i, e := range list {
		out[i] = e
	}
	return out
}
