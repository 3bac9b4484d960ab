package planetary

import (
	"math"
	"testing"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/core/coretest"
	"github.com/vovakirdan/planetary/internal/entity"
)

func TestEntitiesRunToTerminal(t *testing.T) {
	frames := coretest.Assets(4).Explosion
	tests := []struct {
		name  string
		e     entity.Entity
		ticks int
	}{
		{"missile", NewMissile(core.V(0, 0), core.V(0, 30), SideFriendly, 10, core.ColorGreen), 3},
		{"explosion", NewExplosion(core.V(100, 100), frames, 4, 32), 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rec coretest.Recorder
			arrivals := 0
			for i := 0; i < tc.ticks; i++ {
				if tc.e.Terminal() {
					t.Fatalf("Terminal() after %d ticks, expected %d", i, tc.ticks)
				}
				tc.e.Render(&rec)
				if tc.e.Advance() {
					arrivals++
				}
			}
			if !tc.e.Terminal() {
				t.Errorf("Terminal() = false after %d ticks", tc.ticks)
			}
			if arrivals != 1 {
				t.Errorf("Advance() reported the terminal state %d times, expected 1", arrivals)
			}
			if tc.e.Advance() {
				t.Error("Advance() past the terminal state should report false")
			}
		})
	}
}

func TestMissileReachesTarget(t *testing.T) {
	tests := []struct {
		name           string
		origin, target core.Vec2
		speed          float64
		expectedTicks  int
	}{
		{"vertical", core.V(200, 0), core.V(200, 594), 1, 594},
		{"diagonal", core.V(5, 563), core.V(400, 100), 8, 77},
		{"fractional speed", core.V(0, 0), core.V(10, 0), 3, 4},
		{"shorter than one step", core.V(10, 10), core.V(11, 10), 8, 1},
		{"same point", core.V(50, 50), core.V(50, 50), 8, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMissile(tc.origin, tc.target, SideEnemy, tc.speed, core.ColorRed)
			if m.TotalTicks() != tc.expectedTicks {
				t.Fatalf("TotalTicks() = %d, expected %d", m.TotalTicks(), tc.expectedTicks)
			}

			for i := 1; i < m.TotalTicks(); i++ {
				if m.Advance() {
					t.Fatalf("Advance() returned true early, on call %d", i)
				}
			}
			if !m.Advance() {
				t.Fatal("Advance() should report arrival on the final call")
			}
			if m.Position() != tc.target {
				t.Errorf("Position() = %v, expected %v", m.Position(), tc.target)
			}
			if !m.Terminal() {
				t.Error("Terminal() should be true after arrival")
			}
			if m.Advance() {
				t.Error("Advance() after arrival should not report arrival again")
			}
		})
	}
}

func TestMissileStaysOnSegment(t *testing.T) {
	origin, target := core.V(100, 0), core.V(300, 400)
	m := NewMissile(origin, target, SideFriendly, 7, core.ColorGreen)
	length := math.Sqrt(origin.DistSq(target))

	for !m.Advance() {
		p := m.Position()
		d := math.Sqrt(origin.DistSq(p)) + math.Sqrt(p.DistSq(target))
		if math.Abs(d-length) > 1e-9 {
			t.Fatalf("tip %v left the segment after %d ticks", p, m.Ticks())
		}
	}
}

func TestMissileRender(t *testing.T) {
	var rec coretest.Recorder
	m := NewMissile(core.V(0, 0), core.V(0, 100), SideEnemy, 1, core.ColorRed)
	m.Advance()
	m.Render(&rec)

	if rec.Lines != defaultThickness {
		t.Errorf("Render drew %d lines, expected %d", rec.Lines, defaultThickness)
	}
	if rec.Circles != 1 {
		t.Errorf("Render drew %d tip markers, expected 1", rec.Circles)
	}
}

func TestExplosionAdvance(t *testing.T) {
	const total = 16
	e := NewExplosion(core.V(100, 100), nil, total, 32)

	prev := e.Frame()
	for i := 1; i < total; i++ {
		if e.Advance() {
			t.Fatalf("Advance() returned true on call %d of %d", i, total)
		}
		if e.Frame() != prev+1 {
			t.Fatalf("frame went from %d to %d, expected +1", prev, e.Frame())
		}
		prev = e.Frame()
	}
	if !e.Advance() {
		t.Fatalf("Advance() should return true on call %d", total)
	}
	if e.Frame() < 0 || e.Frame() >= total {
		t.Errorf("Frame() = %d, expected within [0, %d)", e.Frame(), total)
	}
	if e.Advance() {
		t.Error("Advance() after the terminal frame should return false")
	}
}

func TestExplosionSingleFrame(t *testing.T) {
	e := NewExplosion(core.V(0, 0), nil, 1, 10)
	if !e.Advance() {
		t.Error("a one-frame explosion should finish on the first Advance()")
	}
}

func TestExplosionRadius(t *testing.T) {
	const maxRadius = 32
	e := NewExplosion(core.V(0, 0), nil, 16, maxRadius)

	var radii []float64
	for {
		radii = append(radii, e.Radius())
		if e.Advance() {
			break
		}
	}

	peak := 0.0
	for i, r := range radii {
		if r <= 0 {
			t.Errorf("frame %d has radius %v, expected > 0", i, r)
		}
		if r > maxRadius {
			t.Errorf("frame %d radius %v exceeds the maximum", i, r)
		}
		peak = max(peak, r)
	}
	if peak != maxRadius {
		t.Errorf("peak radius = %v, expected %v", peak, maxRadius)
	}
	if radii[0] >= radii[7] || radii[15] >= radii[8] {
		t.Errorf("radius should grow then shrink, got %v", radii)
	}
}

func TestExplosionRenderFrameMapping(t *testing.T) {
	frames := make([]core.Image, 4)
	for i := range frames {
		frames[i] = &coretest.Image{W: 64, H: 64}
	}
	e := NewExplosion(core.V(300, 200), frames, 16, 32)
	for range 5 {
		e.Advance()
	}

	var rec coretest.Recorder
	e.Render(&rec)

	if len(rec.Blits) != 1 {
		t.Fatalf("Render blitted %d images, expected 1", len(rec.Blits))
	}
	b := rec.Blits[0]
	if b.Image != frames[1] {
		t.Error("frame 5 of 16 should map to bitmap 1 of 4")
	}
	if b.X != 300 || b.Y != 168 || b.Align != core.AlignCenter {
		t.Errorf("Blit at (%d, %d) align %d, expected (300, 168) centred", b.X, b.Y, b.Align)
	}
}

func TestBaseHitSaturates(t *testing.T) {
	b := NewBase(200, 160, [3]int{16, 48, 76})

	steps := []struct {
		changed   bool
		integrity int
		alive     bool
	}{
		{true, 1, true},
		{true, 0, false},
		{false, 0, false},
	}
	for i, s := range steps {
		if got := b.Hit(); got != s.changed {
			t.Errorf("hit %d: Hit() = %v, expected %v", i+1, got, s.changed)
		}
		if b.Integrity != s.integrity {
			t.Errorf("hit %d: Integrity = %d, expected %d", i+1, b.Integrity, s.integrity)
		}
		if b.Alive() != s.alive {
			t.Errorf("hit %d: Alive() = %v, expected %v", i+1, b.Alive(), s.alive)
		}
	}
}

func TestBaseFootprint(t *testing.T) {
	b := NewBase(200, 160, [3]int{16, 48, 76})

	tests := []struct {
		integrity int
		expected  core.Rect
	}{
		{2, core.NewRect(120, 519, 160, 76)},
		{1, core.NewRect(120, 547, 160, 48)},
		{0, core.NewRect(120, 579, 160, 16)},
	}
	for _, tc := range tests {
		b.Integrity = tc.integrity
		if got := b.Footprint(595); got != tc.expected {
			t.Errorf("Footprint() at integrity %d = %+v, expected %+v", tc.integrity, got, tc.expected)
		}
	}
}

func TestSchedulerDecay(t *testing.T) {
	cfg := config.DefaultPlanetaryConfig().Spawn
	s := NewScheduler(cfg, nil)

	if s.Next() != 120 {
		t.Fatalf("first spawn at %d, expected 120", s.Next())
	}
	if !s.Due(120) || s.Due(119) {
		t.Error("Due() should fire on the scheduled frame only")
	}

	// 256000 / (120 + 512) = 405.06
	if got := s.Reschedule(120, 0); got != 525 {
		t.Errorf("Reschedule(120) = %d, expected 525", got)
	}

	prev := math.MaxInt
	for _, f := range []int{600, 2000, 5000, 10000} {
		next := s.Reschedule(f, 0)
		interval := next - f
		if interval > prev {
			t.Errorf("interval at frame %d = %d grew from %d", f, interval, prev)
		}
		prev = interval
	}

	// Far into the game the interval settles on the minimum
	if got := s.Reschedule(1_000_000, 0) - 1_000_000; got != cfg.MinInterval {
		t.Errorf("late interval = %d, expected minimum %d", got, cfg.MinInterval)
	}
}

func TestSchedulerDifficultyShortensInterval(t *testing.T) {
	cfg := config.DefaultPlanetaryConfig()
	plain := NewScheduler(cfg.Spawn, nil).Reschedule(600, 0)

	// Normal difficulty keeps the decay formula exact
	normal := NewScheduler(cfg.Spawn, config.NewDifficultyManager(cfg.Difficulty)).Reschedule(600, 0)
	if normal != plain {
		t.Errorf("normal difficulty next spawn = %d, expected %d", normal, plain)
	}

	config.ApplyPlanetaryPreset(&cfg, config.DifficultyHard)
	harder := NewScheduler(cfg.Spawn, config.NewDifficultyManager(cfg.Difficulty)).Reschedule(600, 0)
	if harder >= plain {
		t.Errorf("hard difficulty next spawn = %d, expected earlier than %d", harder, plain)
	}
}
