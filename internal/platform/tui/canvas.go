package tui

import (
	"math"

	"github.com/vovakirdan/planetary/internal/core"
)

const (
	lineRune   = '·'
	circleRune = 'o'
)

// Canvas is a core.Canvas that downsamples the world onto a character Screen.
// Draw calls compose into a back buffer; Present copies it to the front buffer
// that View renders, so a frame is never shown half drawn.
type Canvas struct {
	back   *core.Screen
	front  *core.Screen
	worldW int
	worldH int
	err    error
}

// NewCanvas creates a canvas of cols x rows cells showing a worldW x worldH world.
func NewCanvas(cols, rows, worldW, worldH int) *Canvas {
	return &Canvas{
		back:   core.NewScreen(cols, rows),
		front:  core.NewScreen(cols, rows),
		worldW: worldW,
		worldH: worldH,
	}
}

// Resize changes the cell grid. Both buffers are cleared.
func (c *Canvas) Resize(cols, rows int) {
	c.back.Resize(cols, rows)
	c.front.Resize(cols, rows)
}

// Front returns the last presented frame.
func (c *Canvas) Front() *core.Screen {
	return c.front
}

// CellOf maps a world point to the cell containing it.
func (c *Canvas) CellOf(x, y int) (int, int) {
	return floorDiv(x*c.back.Width(), c.worldW), floorDiv(y*c.back.Height(), c.worldH)
}

// WorldOf maps a cell to the world point at its centre.
func (c *Canvas) WorldOf(col, row int) core.Vec2 {
	cw := float64(c.worldW) / float64(max(1, c.back.Width()))
	ch := float64(c.worldH) / float64(max(1, c.back.Height()))
	return core.V((float64(col)+0.5)*cw, (float64(row)+0.5)*ch)
}

// CellSize returns the world size of one cell.
func (c *Canvas) CellSize() (float64, float64) {
	return float64(c.worldW) / float64(max(1, c.back.Width())),
		float64(c.worldH) / float64(max(1, c.back.Height()))
}

func (c *Canvas) Clear(core.Color) {
	c.back.Clear()
}

func (c *Canvas) Blit(img core.Image, x, y int, align core.Align) {
	sprite, ok := img.(*core.Sprite)
	if !ok {
		if c.err == nil {
			c.err = core.ErrForeignImage
		}
		return
	}

	left := align.AnchorX(x, sprite.W)
	cx0, cy0 := c.CellOf(left, y)
	cx1, cy1 := c.CellOf(left+sprite.W, y+sprite.H)

	col := (cx0+cx1)/2 - sprite.Cols()/2
	row := cy0
	if sprite.Bottom {
		row = max(cy0, cy1-1) - len(sprite.Rows) + 1
	}

	for dy, line := range sprite.Rows {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				c.back.SetCell(col+dx, row+dy, r, sprite.Color)
			}
			dx++
		}
	}
}

// Line draws with Bresenham's algorithm in cell space.
func (c *Canvas) Line(x0, y0, x1, y1 int, color core.Color) {
	ax, ay := c.CellOf(x0, y0)
	bx, by := c.CellOf(x1, y1)

	dx := core.Abs(bx - ax)
	dy := -core.Abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		c.back.SetCell(ax, ay, lineRune, color)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// Circle draws an outline. Cells are not square, so the outline is an ellipse
// in cell space.
func (c *Canvas) Circle(cx, cy, r int, color core.Color) {
	col, row := c.CellOf(cx, cy)
	cw, ch := c.CellSize()
	rx := float64(r) / cw
	ry := float64(r) / ch
	if rx < 0.5 && ry < 0.5 {
		c.back.SetCell(col, row, circleRune, color)
		return
	}

	steps := max(8, int(4*(rx+ry)))
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := col + int(math.Round(rx*math.Cos(a)))
		y := row + int(math.Round(ry*math.Sin(a)))
		c.back.SetCell(x, y, circleRune, color)
	}
}

func (c *Canvas) Text(x, y int, s string, color core.Color) {
	col, row := c.CellOf(x, y)
	c.back.DrawText(col-len([]rune(s))/2, row, s, color)
}

// Present publishes the composed frame. A fault recorded since the previous
// Present is returned instead and the front buffer keeps the old frame.
func (c *Canvas) Present() error {
	if err := c.err; err != nil {
		c.err = nil
		return err
	}
	c.front.CopyFrom(c.back)
	return nil
}

func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
