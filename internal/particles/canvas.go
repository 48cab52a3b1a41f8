package particles

import (
	"fmt"
	"image/color"
	"math"
)

// Composite selects how new drawing combines with what is already on the canvas.
type Composite int

const (
	// SourceOver is normal alpha blending.
	SourceOver Composite = iota
	// Lighter adds source and destination colors.
	Lighter
)

// CSS returns the canvas 2D globalCompositeOperation name.
func (c Composite) CSS() string {
	if c == Lighter {
		return "lighter"
	}
	return "source-over"
}

// RGBA is a straight-alpha color with a fractional alpha channel.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns c with its alpha multiplied by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A *= a
	return c
}

// NRGBA converts c for image/color consumers.
func (c RGBA) NRGBA() color.NRGBA {
	a := math.Round(clamp(c.A, 0, 1) * 255)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// CSS formats c as a CSS rgba() color.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Canvas is the drawing surface the engine renders onto.
type Canvas interface {
	// SetSize sizes the backing buffer for vp and scales later drawing
	// by the viewport's pixel ratio.
	SetSize(vp Viewport)
	Clear(width, height float64)
	SetComposite(op Composite)
	StrokeLine(x0, y0, x1, y1, width float64, c RGBA)
	FillCircle(x, y, r float64, c RGBA)
}
