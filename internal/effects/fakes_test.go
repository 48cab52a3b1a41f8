package effects

import (
	"context"
	"errors"
	"strings"
	"time"
)

// fakeElement is an in-memory Element and Target.
type fakeElement struct {
	*Bus
	id       string
	tag      string
	attrs    map[string]string
	classes  map[string]bool
	style    map[string]string
	text     string
	rect     Rect
	parent   *fakeElement
	detached bool
}

func newElement(id string, classes ...string) *fakeElement {
	el := &fakeElement{
		Bus:     NewBus(),
		id:      id,
		attrs:   map[string]string{},
		classes: map[string]bool{},
		style:   map[string]string{},
	}
	for _, c := range classes {
		el.classes[c] = true
	}
	return el
}

func (e *fakeElement) ID() string { return e.id }
func (e *fakeElement) Attr(name string) string { return e.attrs[name] }
func (e *fakeElement) SetAttr(name, v string) { e.attrs[name] = v }
func (e *fakeElement) RemoveAttr(name string) { delete(e.attrs, name) }
func (e *fakeElement) AddClass(name string) { e.classes[name] = true }
func (e *fakeElement) RemoveClass(name string) { delete(e.classes, name) }
func (e *fakeElement) HasClass(name string) bool { return e.classes[name] }
func (e *fakeElement) SetText(text string) { e.text = text }
func (e *fakeElement) SetStyle(prop, v string) { e.style[prop] = v }
func (e *fakeElement) Rect() Rect { return e.rect }
func (e *fakeElement) Connected() bool { return !e.detached }
func (e *fakeElement) hasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// matches understands comma-separated lists of ".class" and tag selectors.
func (e *fakeElement) matches(selector string) bool {
	for _, s := range strings.Split(selector, ",") {
		s = strings.TrimSpace(s)
		if c, ok := strings.CutPrefix(s, "."); ok && e.classes[c] {
			return true
		}
		if s != "" && s == e.tag {
			return true
		}
	}
	return false
}

func (e *fakeElement) Closest(selector string) Element {
	for el := e; el != nil; el = el.parent {
		if el.matches(selector) {
			return el
		}
	}
	return nil
}

// fakeObserver records observed elements and lets tests deliver batches.
type fakeObserver struct {
	thresholds []float64
	callback   func([]Entry)
	observed   map[Element]bool
}

func (o *fakeObserver) Observe(el Element) { o.observed[el] = true }
func (o *fakeObserver) Unobserve(el Element) { delete(o.observed, el) }

func (o *fakeObserver) deliver(entries ...Entry) { o.callback(entries) }

// observers is an ObserverFactory that keeps what it creates.
type observers struct {
	created []*fakeObserver
}

func (f *observers) factory(thresholds []float64, callback func([]Entry)) Observer {
	o := &fakeObserver{thresholds: thresholds, callback: callback, observed: map[Element]bool{}}
	f.created = append(f.created, o)
	return o
}

func (f *observers) last() *fakeObserver { return f.created[len(f.created)-1] }

func visible(el Element, ratio float64) Entry {
	return Entry{Target: el, Ratio: ratio, Intersecting: ratio > 0}
}

// fakeTimers fires callbacks only when the test says so.
type fakeTimers struct {
	pending []*fakeTimer
}

type fakeTimer struct {
	d         time.Duration
	fn        func()
	cancelled bool
}

func (f *fakeTimers) AfterFunc(d time.Duration, fn func()) func() {
	t := &fakeTimer{d: d, fn: fn}
	f.pending = append(f.pending, t)
	return func() { t.cancelled = true }
}

func (f *fakeTimers) fireAll() {
	list := f.pending
	f.pending = nil
	for _, t := range list {
		if !t.cancelled {
			t.fn()
		}
	}
}

type fakeNav struct {
	external  []string
	scrolled  []string
	smooth    []bool
	redirects []string
}

func (n *fakeNav) OpenExternal(href string) { n.external = append(n.external, href) }
func (n *fakeNav) ScrollTo(id string, smooth bool) bool {
	n.scrolled = append(n.scrolled, id)
	n.smooth = append(n.smooth, smooth)
	return true
}
func (n *fakeNav) Redirect(href string) { n.redirects = append(n.redirects, href) }

type fakeClipboard struct {
	err    error
	copied []string
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

var errDenied = errors.New("denied")

type fakeDialog struct {
	*fakeElement
	open      bool
	supported bool
}

func newDialog(id string) *fakeDialog {
	return &fakeDialog{fakeElement: newElement(id), supported: true}
}

func (d *fakeDialog) ShowModal() bool {
	if !d.supported {
		return false
	}
	d.open = true
	return true
}
func (d *fakeDialog) Close() { d.open = false }
func (d *fakeDialog) IsOpen() bool { return d.open }
