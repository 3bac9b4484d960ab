package planetary

import "github.com/vovakirdan/planetary/internal/core"

// Autopilot produces scripted input for headless runs. Every Interval frames it
// aims at the enemy missile closest to the ground and fires the cannon on that
// side of the screen.
type Autopilot struct {
	Interval int
}

// Input returns the input frame for the session's next tick.
func (a Autopilot) Input(s *Session) core.InputFrame {
	in := core.InputFrame{Pointer: s.pointer}
	if a.Interval <= 0 || (s.frames+1)%a.Interval != 0 {
		return in
	}

	var target *Missile
	s.enemies.Each(func(_ int, m *Missile) {
		if target == nil || m.Position().Y > target.Position().Y {
			target = m
		}
	})
	if target == nil {
		return in
	}

	// Lead the target by one tick
	p := target.Position()
	next := p.Add(target.Target().Sub(p).Scale(1 / float64(max(1, target.TotalTicks()-target.Ticks()))))
	in.Pointer = next
	if next.X < float64(s.cfg.World.Width)/2 {
		in.Pressed[core.ButtonLeft] = true
	} else {
		in.Pressed[core.ButtonRight] = true
	}
	return in
}
