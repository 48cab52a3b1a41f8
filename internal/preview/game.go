// Package preview shows the particle background in a desktop window, for
// tuning the engine without a browser.
package preview

import (
	"errors"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/motion"
	"github.com/Zachkp/folio/internal/particles"
)

// Background is the page background color the preview clears to.
var Background = color.RGBA{R: 7, G: 11, B: 20, A: 255}

// Options configures the preview.
type Options struct {
	Width, Height int
	Config        particles.Config
	Motion        motion.Preference
	Rand          *rand.Rand
}

// Game hosts a particles.Loop inside ebiten. Frames requested by the loop
// run on every Draw, the way a browser runs animation frames.
type Game struct {
	opts   Options
	frames frame.Queue
	canvas *Canvas
	loop   *particles.Loop
	vp     particles.Viewport
	start  time.Time

	// deviceScale reports the monitor's device pixel ratio.
	deviceScale func() float64
}

// New creates a preview game. The particle field is created on the first
// Layout, once the window size is known.
func New(opts Options) *Game {
	return &Game{
		opts:   opts,
		canvas: NewCanvas(Background),
		start:  time.Now(),
		deviceScale: func() float64 {
			return ebiten.Monitor().DeviceScaleFactor()
		},
	}
}

// Loop returns the running particle loop, or nil before the first Layout
// and under reduced motion.
func (g *Game) Loop() *particles.Loop { return g.loop }

// Update implements ebiten.Game. Escape closes the window.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	if g.loop == nil {
		screen.Fill(Background)
		return
	}
	g.frames.Run(time.Since(g.start))
}

// Layout implements ebiten.Game. The screen is the backing buffer of the
// window's viewport; a size change reinitializes the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := particles.NormalizeViewport(float64(outsideWidth), float64(outsideHeight), g.deviceScale(), g.opts.Config.MaxPixelRatio)
	if vp != g.vp {
		g.resize(vp)
	}
	w, h := vp.BufferSize()
	return max(w, 1), max(h, 1)
}

func (g *Game) resize(vp particles.Viewport) {
	first := g.vp == (particles.Viewport{})
	g.vp = vp
	if !first {
		if g.loop != nil {
			g.loop.Resize(vp)
		}
		return
	}
	g.loop = particles.Mount(particles.Options{
		Config:   g.opts.Config,
		Motion:   g.opts.Motion,
		Canvas:   g.canvas,
		Frames:   &g.frames,
		Viewport: vp,
		Rand:     g.opts.Rand,
	})
	if g.loop == nil {
		log.Printf("[preview] reduced motion: particle background disabled")
	}
}

// Run opens the preview window and blocks until it is closed.
func Run(opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("folio · particle preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(New(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
