//go:build js && wasm

package dom

import (
	"syscall/js"
	"time"

	"github.com/Zachkp/folio/internal/frame"
)

// Frames is a frame.Scheduler backed by requestAnimationFrame. All
// callbacks requested before a frame run in that frame, in order.
type Frames struct {
	queue     frame.Queue
	fn        js.Func
	scheduled bool
}

// NewFrames returns a scheduler tied to the page's animation frames.
func NewFrames() *Frames {
	f := &Frames{}
	f.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		f.scheduled = false
		var now time.Duration
		if len(args) > 0 {
			now = time.Duration(args[0].Float() * float64(time.Millisecond))
		}
		f.queue.Run(now)
		f.schedule()
		return nil
	})
	return f
}

// RequestFrame implements frame.Scheduler.
func (f *Frames) RequestFrame(fn frame.Callback) {
	f.queue.RequestFrame(fn)
	f.schedule()
}

func (f *Frames) schedule() {
	if f.scheduled || f.queue.Len() == 0 {
		return
	}
	f.scheduled = true
	window().Call("requestAnimationFrame", f.fn)
}
