// Package gfx hosts the game in a desktop window through Ebitengine.
package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/planetary/internal/core"
)

// debugGlyphW is the advance of the ebitenutil debug font.
const debugGlyphW = 6

// Bitmap is a core.Image backed by an Ebitengine image.
type Bitmap struct {
	img *ebiten.Image
}

// Size returns the bitmap size in world pixels.
func (b *Bitmap) Size() (int, int) {
	s := b.img.Bounds().Size()
	return s.X, s.Y
}

// Canvas is a core.Canvas drawing into an offscreen framebuffer at world
// resolution. Present copies the framebuffer to the front image that Draw shows.
type Canvas struct {
	back  *ebiten.Image
	front *ebiten.Image
	err   error
}

// NewCanvas allocates both framebuffers.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		back:  ebiten.NewImage(w, h),
		front: ebiten.NewImage(w, h),
	}
}

// Front returns the last presented frame.
func (c *Canvas) Front() *ebiten.Image {
	return c.front
}

func (c *Canvas) Clear(color core.Color) {
	c.back.Fill(color.RGBA())
}

func (c *Canvas) Blit(img core.Image, x, y int, align core.Align) {
	b, ok := img.(*Bitmap)
	if !ok {
		if c.err == nil {
			c.err = core.ErrForeignImage
		}
		return
	}
	w, _ := b.Size()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(align.AnchorX(x, w)), float64(y))
	c.back.DrawImage(b.img, &op)
}

func (c *Canvas) Line(x0, y0, x1, y1 int, color core.Color) {
	vector.StrokeLine(c.back, float32(x0), float32(y0), float32(x1), float32(y1), 1, color.RGBA(), false)
}

func (c *Canvas) Circle(cx, cy, r int, color core.Color) {
	vector.StrokeCircle(c.back, float32(cx), float32(cy), float32(r), 1, color.RGBA(), true)
}

func (c *Canvas) Text(x, y int, s string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.back, s, x-len(s)*debugGlyphW/2, y)
}

// Present publishes the frame, or reports the first fault since the previous
// Present and keeps the old frame.
func (c *Canvas) Present() error {
	if err := c.err; err != nil {
		c.err = nil
		return err
	}
	c.front.Clear()
	c.front.DrawImage(c.back, nil)
	return nil
}
