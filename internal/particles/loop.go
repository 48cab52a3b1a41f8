package particles

import (
	"math/rand/v2"
	"time"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/motion"
)

// Loop drives a Field from a host's frame scheduler. It has no stop
// condition; it lives as long as the host keeps scheduling frames.
type Loop struct {
	field  *Field
	canvas Canvas
	frames frame.Scheduler
	count  uint64
}

// Options configures Mount.
type Options struct {
	Config   Config
	Motion   motion.Preference
	Canvas   Canvas
	Frames   frame.Scheduler
	Viewport Viewport
	Rand     *rand.Rand
}

// Mount creates and starts the background loop. Under reduced motion, or
// when the host has no canvas or scheduler to offer, it returns nil and
// nothing is drawn.
func Mount(opts Options) *Loop {
	if !opts.Motion.Allowed() || opts.Canvas == nil || opts.Frames == nil {
		return nil
	}
	l := &Loop{
		field:  NewField(opts.Config, opts.Rand),
		canvas: opts.Canvas,
		frames: opts.Frames,
	}
	l.Resize(opts.Viewport)
	l.frames.RequestFrame(l.tick)
	return l
}

// Field returns the simulation the loop drives.
func (l *Loop) Field() *Field { return l.field }

// Frames returns how many frames have been drawn.
func (l *Loop) Frames() uint64 { return l.count }

// Resize resizes the canvas and reinitializes the particles for vp.
func (l *Loop) Resize(vp Viewport) {
	l.canvas.SetSize(vp)
	l.field.Resize(vp)
}

func (l *Loop) tick(time.Duration) {
	l.field.Frame(l.canvas)
	l.count++
	l.frames.RequestFrame(l.tick)
}
