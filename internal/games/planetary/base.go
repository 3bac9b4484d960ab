package planetary

import (
	"github.com/vovakirdan/planetary/internal/core"
)

// Integrity levels of a base.
const (
	IntegrityDestroyed = 0
	IntegrityDamaged   = 1
	IntegrityIntact    = 2
)

// Base is a destructible building standing on the ground line.
// Destroyed bases stay in place as rubble.
type Base struct {
	X         int // Centre of the footprint
	Integrity int
	Width     int
	Heights   [3]int // Footprint height per integrity level
}

// NewBase returns an intact base centred at x.
func NewBase(x, width int, heights [3]int) Base {
	return Base{X: x, Integrity: IntegrityIntact, Width: width, Heights: heights}
}

// Hit removes one integrity level, never going below destroyed.
// It reports whether the level changed.
func (b *Base) Hit() bool {
	if b.Integrity <= IntegrityDestroyed {
		return false
	}
	b.Integrity--
	return true
}

// Alive reports whether the base still counts as a life.
func (b *Base) Alive() bool {
	return b.Integrity > IntegrityDestroyed
}

// Footprint is the half-open box [X-W/2, X+W/2) x [groundY-h, groundY) for the
// height h of the current integrity level.
func (b *Base) Footprint(groundY int) core.Rect {
	h := b.Heights[core.Clamp(b.Integrity, 0, 2)]
	return core.NewRect(b.X-b.Width/2, groundY-h, b.Width, h)
}

// Render blits the sprite of the current integrity tier centred on X with its
// bottom on the ground line.
func (b *Base) Render(dst core.Canvas, sprites *[3]core.Image, groundY int) {
	img := sprites[core.Clamp(b.Integrity, 0, 2)]
	_, h := img.Size()
	dst.Blit(img, b.X, groundY-h, core.AlignCenter)
}
