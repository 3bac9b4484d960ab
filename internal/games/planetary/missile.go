package planetary

import (
	"math"

	"github.com/vovakirdan/planetary/internal/core"
)

// Side is the ownership tag of a missile. It decides the draw color and which
// collision rules apply.
type Side int

const (
	SideFriendly Side = iota
	SideEnemy
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "friendly"
}

// Default missile looks.
const (
	defaultThickness = 2
	defaultTipRadius = 3
	tipColor         = core.ColorMagenta
)

// Missile flies along a straight line from its origin to its target.
// Its position after k ticks is origin + (k/n)(target - origin), where n is the
// number of ticks the flight takes at the missile's speed.
type Missile struct {
	origin core.Vec2
	target core.Vec2
	pos    core.Vec2
	side   Side
	color  core.Color
	speed  float64

	ticks      int
	totalTicks int
	arrived    bool

	thickness int
	tipRadius int
}

// NewMissile creates a missile at origin heading to target at speed world
// pixels per tick. Equal origin and target arrive on the first tick.
func NewMissile(origin, target core.Vec2, side Side, speed float64, color core.Color) *Missile {
	total := 1
	if speed > 0 {
		if n := int(math.Ceil(math.Sqrt(origin.DistSq(target)) / speed)); n > 1 {
			total = n
		}
	}
	return &Missile{
		origin:     origin,
		target:     target,
		pos:        origin,
		side:       side,
		color:      color,
		speed:      speed,
		totalTicks: total,
		thickness:  defaultThickness,
		tipRadius:  defaultTipRadius,
	}
}

func (m *Missile) setStyle(thickness, tipRadius int) {
	m.thickness = max(1, thickness)
	m.tipRadius = max(0, tipRadius)
}

// Advance moves the missile one tick along its path and reports whether it
// reached the target on this tick.
func (m *Missile) Advance() bool {
	if m.arrived {
		return false
	}
	m.ticks++
	m.pos = m.origin.Lerp(m.target, float64(m.ticks)/float64(m.totalTicks))
	if m.ticks >= m.totalTicks {
		m.arrived = true
		return true
	}
	return false
}

// Terminal reports whether the missile has reached its target.
func (m *Missile) Terminal() bool {
	return m.arrived
}

// Position returns the tip of the missile.
func (m *Missile) Position() core.Vec2 {
	return m.pos
}

func (m *Missile) Origin() core.Vec2 { return m.origin }
func (m *Missile) Target() core.Vec2 { return m.target }
func (m *Missile) Side() Side        { return m.side }
func (m *Missile) Ticks() int        { return m.ticks }

// TotalTicks is the number of Advance calls the flight takes.
func (m *Missile) TotalTicks() int {
	return m.totalTicks
}

// Render draws the trail as parallel 1px lines and a marker circle at the tip.
func (m *Missile) Render(dst core.Canvas) {
	x0, y0 := m.origin.Round()
	x1, y1 := m.pos.Round()
	for i := range m.thickness {
		dst.Line(x0+i, y0, x1+i, y1, m.color)
	}
	if m.tipRadius > 0 {
		dst.Circle(x1, y1, m.tipRadius, tipColor)
	}
}
