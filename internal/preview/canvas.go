package preview

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Zachkp/folio/internal/particles"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source image for DrawTriangles. It is taken
// from the middle of a 3x3 image so edge sampling stays white.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Canvas draws the particle field onto an ebiten image. Coordinates are in
// logical pixels and scaled by the viewport's pixel ratio.
type Canvas struct {
	dst        *ebiten.Image
	background color.Color
	scale      float32
	blend      ebiten.Blend

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas returns a Canvas that clears to background.
func NewCanvas(background color.Color) *Canvas {
	return &Canvas{background: background, scale: 1, blend: ebiten.BlendSourceOver}
}

// Target sets the image later calls draw onto.
func (c *Canvas) Target(dst *ebiten.Image) { c.dst = dst }

// SetSize implements particles.Canvas.
func (c *Canvas) SetSize(vp particles.Viewport) {
	c.scale = float32(vp.PixelRatio)
	if c.scale <= 0 {
		c.scale = 1
	}
}

// Clear implements particles.Canvas.
func (c *Canvas) Clear(width, height float64) {
	if c.dst == nil {
		return
	}
	c.dst.Fill(c.background)
}

// SetComposite implements particles.Canvas.
func (c *Canvas) SetComposite(op particles.Composite) {
	c.blend = blendFor(op)
}

func blendFor(op particles.Composite) ebiten.Blend {
	if op == particles.Lighter {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

// StrokeLine implements particles.Canvas.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col particles.RGBA) {
	var path vector.Path
	path.MoveTo(c.px(x0), c.px(y0))
	path.LineTo(c.px(x1), c.px(y1))
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width: float32(width) * c.scale,
	})
	c.draw(col)
}

// FillCircle implements particles.Canvas.
func (c *Canvas) FillCircle(x, y, r float64, col particles.RGBA) {
	var path vector.Path
	path.Arc(c.px(x), c.px(y), c.px(r), 0, 2*math.Pi, vector.Clockwise)
	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.draw(col)
}

func (c *Canvas) px(v float64) float32 { return float32(v) * c.scale }

func (c *Canvas) draw(col particles.RGBA) {
	if c.dst == nil || len(c.indices) == 0 {
		return
	}
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(col.R) / 255
		c.vertices[i].ColorG = float32(col.G) / 255
		c.vertices[i].ColorB = float32(col.B) / 255
		c.vertices[i].ColorA = float32(col.A)
	}
	c.dst.DrawTriangles(c.vertices, c.indices, white(), &ebiten.DrawTrianglesOptions{
		Blend:     c.blend,
		AntiAlias: true,
	})
}
