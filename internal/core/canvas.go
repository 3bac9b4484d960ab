package core

import "errors"

// ErrForeignImage is reported by a canvas asked to blit an image produced for a
// different frontend.
var ErrForeignImage = errors.New("core: image does not belong to this canvas")

// Align selects which point of an image is anchored at the blit x-coordinate.
// The y-coordinate is always the top edge of the image.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// AnchorX returns the left edge of an image of width w blitted at x with alignment a.
func (a Align) AnchorX(x, w int) int {
	switch a {
	case AlignCenter:
		return x - w/2
	case AlignRight:
		return x - w + 1
	default:
		return x
	}
}

// Image is a pre-loaded bitmap handle. Size is in world pixels.
type Image interface {
	Size() (w, h int)
}

// Canvas is the renderer the simulation draws into. Coordinates are world pixels.
//
// Draw calls never fail individually: an implementation keeps the first fault and
// reports it from Present, which copies the composed frame to the display surface
// once per tick.
type Canvas interface {
	Clear(c Color)
	Blit(img Image, x, y int, align Align)
	Line(x0, y0, x1, y1 int, c Color)
	Circle(cx, cy, r int, c Color)

	// Text draws a short label horizontally centred on x with its top at y.
	Text(x, y int, s string, c Color)

	Present() error
}

// Discard is a Canvas that draws nothing. Headless runs and tests use it.
var Discard Canvas = discard{}

type discard struct{}

func (discard) Clear(Color) {}
func (discard) Blit(Image, int, int, Align) {}
func (discard) Line(int, int, int, int, Color) {}
func (discard) Circle(int, int, int, Color) {}
func (discard) Text(int, int, string, Color) {}
func (discard) Present() error { return nil }

// Sprite is a rune-grid image used by character frontends.
// Spaces are transparent. The grid is drawn at one rune per cell, centred
// horizontally on its footprint and anchored to the footprint's top edge, or to
// its bottom edge when Bottom is set.
type Sprite struct {
	Rows   []string
	Color  Color
	Bottom bool

	// W and H are the sprite's footprint in world pixels.
	W, H int
}

// Size returns the sprite's footprint in world pixels.
func (s *Sprite) Size() (int, int) {
	return s.W, s.H
}

// Cols returns the width of the widest row in cells.
func (s *Sprite) Cols() int {
	cols := 0
	for _, row := range s.Rows {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	return cols
}
