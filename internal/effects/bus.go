package effects

// EventType names a kind of host event.
type EventType string

const (
	EventScroll       EventType = "scroll"
	EventResize       EventType = "resize"
	EventPointerMove  EventType = "mousemove"
	EventPointerLeave EventType = "mouseleave"
	EventPointerOver  EventType = "mouseover"
	EventClick        EventType = "click"
	EventKeyDown      EventType = "keydown"
	EventBlur         EventType = "blur"
	EventSubmit       EventType = "submit"
)

// Event is a host event as seen by an effect.
type Event struct {
	Type    EventType
	Target  Element
	ClientX float64
	ClientY float64
	Key     string
	Ctrl    bool
	Meta    bool

	// Prevent cancels the host's default action; nil when there is none.
	Prevent func()
	// Stop stops propagation; nil when not supported.
	Stop func()
}

// PreventDefault cancels the host's default action, if any.
func (e Event) PreventDefault() {
	if e.Prevent != nil {
		e.Prevent()
	}
}

// StopPropagation stops the event from reaching outer listeners, if supported.
func (e Event) StopPropagation() {
	if e.Stop != nil {
		e.Stop()
	}
}

// Handler reacts to one event.
type Handler func(Event)

// Source delivers events to subscribed handlers.
type Source interface {
	// On subscribes h to events of type t and returns a function that
	// removes the subscription.
	On(t EventType, h Handler) (off func())
}

type subscription struct {
	h       Handler
	removed bool
}

// Bus is an in-process Source: handlers keyed by event type, invoked in
// subscription order. A Bus is not safe for concurrent use; it lives on
// the host's single event thread.
type Bus struct {
	subs map[EventType][]*subscription
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[EventType][]*subscription)}
}

// On implements Source.
func (b *Bus) On(t EventType, h Handler) func() {
	if b.subs == nil {
		b.subs = make(map[EventType][]*subscription)
	}
	s := &subscription{h: h}
	b.subs[t] = append(b.subs[t], s)
	return func() {
		if s.removed {
			return
		}
		s.removed = true
		list := b.subs[t]
		for i, other := range list {
			if other == s {
				b.subs[t] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers ev to every handler subscribed to ev.Type and returns
// how many ran. Handlers removed during dispatch are skipped.
func (b *Bus) Dispatch(ev Event) int {
	list := append([]*subscription(nil), b.subs[ev.Type]...)
	n := 0
	for _, s := range list {
		if s.removed {
			continue
		}
		s.h(ev)
		n++
	}
	return n
}

// Len returns how many handlers are subscribed to t.
func (b *Bus) Len(t EventType) int {
	return len(b.subs[t])
}
