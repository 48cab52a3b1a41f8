//go:build js && wasm

package dom

import (
	"math"
	"strconv"
	"syscall/js"

	"github.com/Zachkp/folio/internal/particles"
)

// Canvas is a particles.Canvas over a <canvas> 2D context.
type Canvas struct {
	el  js.Value
	ctx js.Value
}

// NewCanvas returns the 2D canvas for el, or nil when el is missing or
// has no 2D context.
func NewCanvas(el *Element) *Canvas {
	if el == nil {
		return nil
	}
	ctx := el.v.Call("getContext", "2d", map[string]any{"alpha": true})
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil
	}
	return &Canvas{el: el.v, ctx: ctx}
}

func (c *Canvas) SetSize(vp particles.Viewport) {
	w, h := vp.BufferSize()
	c.el.Set("width", w)
	c.el.Set("height", h)
	style := c.el.Get("style")
	style.Set("width", strconv.FormatFloat(vp.Width, 'f', -1, 64)+"px")
	style.Set("height", strconv.FormatFloat(vp.Height, 'f', -1, 64)+"px")
	c.ctx.Call("setTransform", vp.PixelRatio, 0, 0, vp.PixelRatio, 0, 0)
}

func (c *Canvas) Clear(width, height float64) {
	c.ctx.Call("clearRect", 0, 0, width, height)
}

func (c *Canvas) SetComposite(op particles.Composite) {
	c.ctx.Set("globalCompositeOperation", op.CSS())
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col particles.RGBA) {
	c.ctx.Set("strokeStyle", col.CSS())
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Call("stroke")
}

func (c *Canvas) FillCircle(x, y, r float64, col particles.RGBA) {
	c.ctx.Set("fillStyle", col.CSS())
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	c.ctx.Call("fill")
}

// viewport reads the window's current viewport.
func viewport(maxRatio float64) particles.Viewport {
	w := window()
	return particles.NormalizeViewport(
		w.Get("innerWidth").Float(),
		w.Get("innerHeight").Float(),
		w.Get("devicePixelRatio").Float(),
		maxRatio,
	)
}
