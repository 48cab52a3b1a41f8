// Package particles implements the ambient particle background: a set of
// slowly drifting points joined by faint lines when they come close.
//
// A Field is a plain simulation object. It is advanced and drawn by a host
// (the browser canvas, or the ebiten preview window) through the Canvas
// interface, so it can be tested without a display.
package particles

import (
	"math"
	"math/rand/v2"
)

// Particle is one point of the background.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Viewport is the logical drawing area and the device pixel ratio it is
// displayed at.
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// BufferSize returns the backing buffer size in device pixels.
func (vp Viewport) BufferSize() (int, int) {
	return int(math.Floor(vp.Width * vp.PixelRatio)), int(math.Floor(vp.Height * vp.PixelRatio))
}

// NormalizeViewport floors the logical size to whole pixels and clamps the
// pixel ratio to [1, maxRatio].
func NormalizeViewport(width, height, ratio, maxRatio float64) Viewport {
	if ratio <= 0 || math.IsNaN(ratio) {
		ratio = 1
	}
	if maxRatio < 1 {
		maxRatio = 1
	}
	return Viewport{
		Width:      math.Max(0, math.Floor(width)),
		Height:     math.Max(0, math.Floor(height)),
		PixelRatio: clamp(ratio, 1, maxRatio),
	}
}

// Count returns how many particles a width×height viewport holds.
func Count(width, height float64, cfg Config) int {
	n := int(math.Round(width * height / cfg.AreaPerParticle))
	return max(cfg.MinParticles, min(cfg.MaxParticles, n))
}

// LinkAlpha returns the stroke alpha for two particles d pixels apart. It
// reports false when the pair is too far apart to be linked.
func LinkAlpha(d float64, cfg Config) (float64, bool) {
	if d > cfg.LinkDistance {
		return 0, false
	}
	return (1 - d/cfg.LinkDistance) * cfg.LinkAlpha, true
}

// Field is the particle simulation for one viewport.
type Field struct {
	cfg       Config
	rng       *rand.Rand
	vp        Viewport
	particles []Particle
}

// NewField returns an empty field. Call Resize before the first frame.
// A nil rng seeds a fresh generator.
func NewField(cfg Config, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{cfg: cfg, rng: rng}
}

// Config returns the field's tuning.
func (f *Field) Config() Config { return f.cfg }

// Viewport returns the viewport of the last Resize.
func (f *Field) Viewport() Viewport { return f.vp }

// Particles returns the live particle slice.
func (f *Field) Particles() []Particle { return f.particles }

// Resize discards every particle and scatters a fresh set over vp.
func (f *Field) Resize(vp Viewport) {
	f.vp = vp
	n := Count(vp.Width, vp.Height, f.cfg)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      f.rng.Float64() * vp.Width,
			Y:      f.rng.Float64() * vp.Height,
			VX:     (f.rng.Float64() - 0.5) * f.cfg.MaxAxisSpeed,
			VY:     (f.rng.Float64() - 0.5) * f.cfg.MaxAxisSpeed,
			Radius: f.cfg.RadiusMin + f.rng.Float64()*f.cfg.RadiusSpan,
		}
	}
}

// Advance moves every particle by one frame of velocity. A particle that
// drifts past the wrap margin reappears at the opposite margin.
func (f *Field) Advance() {
	m := f.cfg.WrapMargin
	w, h := f.vp.Width, f.vp.Height
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < -m {
			p.X = w + m
		}
		if p.X > w+m {
			p.X = -m
		}
		if p.Y < -m {
			p.Y = h + m
		}
		if p.Y > h+m {
			p.Y = -m
		}
	}
}

// Render draws the current state: links first, then dots, both with
// additive compositing. Compositing is reset to normal before returning
// so the next clear is unaffected.
func (f *Field) Render(c Canvas) {
	c.Clear(f.vp.Width, f.vp.Height)
	c.SetComposite(Lighter)

	ps := f.particles
	for i := range ps {
		a := ps[i]
		for j := i + 1; j < len(ps); j++ {
			b := ps[j]
			alpha, ok := LinkAlpha(math.Hypot(a.X-b.X, a.Y-b.Y), f.cfg)
			if !ok {
				continue
			}
			c.StrokeLine(a.X, a.Y, b.X, b.Y, f.cfg.LinkWidth, f.cfg.LinkColor.WithAlpha(alpha))
		}
	}

	for _, p := range ps {
		c.FillCircle(p.X, p.Y, p.Radius, f.cfg.DotColor)
	}

	c.SetComposite(SourceOver)
}

// Frame advances the simulation by one step and draws it.
func (f *Field) Frame(c Canvas) {
	f.Advance()
	f.Render(c)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
