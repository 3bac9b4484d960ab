package planetary

import (
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/entity"
)

// resolveCollisions runs the three collision passes in their fixed order:
// enemy missiles against the ground, every missile against the explosions that
// were live when the pass began, and enemy missiles against the bases.
// Enemies that arrived this tick and met none of them detonate last.
// A missile leaves its collection at most once; each removal becomes an explosion.
func (s *Session) resolveCollisions() {
	groundY := float64(s.cfg.World.GroundY)

	s.enemies.Sweep(func(m *Missile) bool {
		if m.Position().Y < groundY {
			return false
		}
		s.detonate(m)
		return true
	})

	// Explosions created below join the collection but are only tested from the
	// next tick on.
	live := s.explosions.Len()
	s.enemies.Sweep(func(m *Missile) bool {
		if !s.caught(m, live) {
			return false
		}
		s.intercepts++
		s.detonate(m)
		return true
	})
	s.friendlies.Sweep(func(m *Missile) bool {
		if !s.caught(m, live) {
			return false
		}
		s.detonate(m)
		return true
	})

	// Friendly missiles never reach this pass.
	s.enemies.Sweep(func(m *Missile) bool {
		for i := range s.bases {
			if s.bases[i].Footprint(s.cfg.World.GroundY).ContainsPoint(m.Position()) {
				s.bases[i].Hit()
				s.detonate(m)
				return true
			}
		}
		return false
	})

	s.enemies.Sweep(func(m *Missile) bool {
		if !m.Terminal() {
			return false
		}
		s.detonate(m)
		return true
	})
}

// caught reports whether m's tip lies in any of the first n explosions.
func (s *Session) caught(m *Missile, n int) bool {
	return anyExplosionCovers(s.explosions, n, m.Position())
}

func anyExplosionCovers(explosions *entity.Collection[*Explosion], n int, p core.Vec2) bool {
	for i := range n {
		e := explosions.At(i)
		if core.PointInCircle(p, e.Center(), e.Radius()) {
			return true
		}
	}
	return false
}

// detonate replaces a removed missile with an explosion at its tip.
func (s *Session) detonate(m *Missile) {
	s.explosions.PushBack(s.newExplosion(m.Position()))
}
