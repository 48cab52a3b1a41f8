package effects

import (
	"fmt"
	"time"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/motion"
)

// CursorEase is the fraction of the remaining distance the trailing cursor
// covers each frame.
const CursorEase = 0.18

// CursorHoverSelector matches elements that light the cursor up.
const CursorHoverSelector = "a, button, .pcard, .pill, .rowlink"

// Cursor is a decorative dot that trails the pointer.
type Cursor struct {
	el     Element
	frames frame.Scheduler
	x, y   float64
	tx, ty float64
}

// MountCursor starts the trailing cursor. It returns nil under reduced
// motion or when the page has no cursor element.
func MountCursor(window, document Source, el Element, frames frame.Scheduler, pref motion.Preference) *Cursor {
	if !pref.Allowed() || el == nil {
		return nil
	}
	c := &Cursor{el: el, frames: frames, x: -100, y: -100, tx: -100, ty: -100}
	window.On(EventPointerMove, func(ev Event) {
		c.x, c.y = ev.ClientX, ev.ClientY
	})
	document.On(EventPointerOver, func(ev Event) {
		if ev.Target != nil && ev.Target.Closest(CursorHoverSelector) != nil {
			c.el.SetStyle("opacity", "1")
		}
	})
	frames.RequestFrame(c.tick)
	return c
}

// Position returns where the cursor is drawn.
func (c *Cursor) Position() (x, y float64) { return c.tx, c.ty }

func (c *Cursor) tick(time.Duration) {
	c.tx += (c.x - c.tx) * CursorEase
	c.ty += (c.y - c.ty) * CursorEase
	c.el.SetStyle("transform", fmt.Sprintf("translate3d(%gpx, %gpx, 0)", c.tx, c.ty))
	c.frames.RequestFrame(c.tick)
}
