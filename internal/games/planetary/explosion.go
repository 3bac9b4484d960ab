package planetary

import (
	"github.com/vovakirdan/planetary/internal/core"
)

// Explosion is a fixed-length, forward-only animation with a blast radius that
// grows to its maximum mid-animation and shrinks again.
type Explosion struct {
	center    core.Vec2
	frames    []core.Image
	frame     int
	total     int
	maxRadius float64
	done      bool
}

// NewExplosion creates an explosion at center lasting totalFrames ticks.
// frames is the bitmap sequence, stretched over the animation when its length differs.
func NewExplosion(center core.Vec2, frames []core.Image, totalFrames int, maxRadius float64) *Explosion {
	return &Explosion{
		center:    center,
		frames:    frames,
		total:     max(1, totalFrames),
		maxRadius: maxRadius,
	}
}

// Advance steps the animation. It returns true on the totalFrames-th call, which
// leaves the frame index on the terminal frame.
func (e *Explosion) Advance() bool {
	if e.done {
		return false
	}
	if e.frame == e.total-1 {
		e.done = true
		return true
	}
	e.frame++
	return false
}

// Terminal reports whether the animation has finished.
func (e *Explosion) Terminal() bool {
	return e.done
}

func (e *Explosion) Center() core.Vec2 { return e.center }
func (e *Explosion) Frame() int        { return e.frame }
func (e *Explosion) TotalFrames() int  { return e.total }

// Radius returns the blast radius of the current frame.
func (e *Explosion) Radius() float64 {
	half := (e.total + 1) / 2
	step := min(e.frame+1, e.total-e.frame)
	return e.maxRadius * float64(min(step, half)) / float64(half)
}

// Render blits the current bitmap centered on the explosion, or a circle of the
// current radius when no bitmaps were supplied.
func (e *Explosion) Render(dst core.Canvas) {
	cx, cy := e.center.Round()
	if len(e.frames) == 0 {
		dst.Circle(cx, cy, int(e.Radius()), core.ColorOrange)
		return
	}
	img := e.frames[e.frame*len(e.frames)/e.total]
	_, h := img.Size()
	dst.Blit(img, cx, cy-h/2, core.AlignCenter)
}
