// Package planetary implements the single-player missile-defense simulation:
// missiles, explosions, bases, the collision passes and the per-tick session
// update that ties them together.
package planetary

import (
	"math/rand"

	"github.com/vovakirdan/planetary/internal/config"
	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/entity"
)

// Outcome is what a session tick reports to its owner.
type Outcome int

const (
	OutcomeRunning   Outcome = iota
	OutcomeAbandoned         // ESC pressed; the session made no further changes
	OutcomeGameOver          // every base is destroyed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAbandoned:
		return "abandoned"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "running"
	}
}

// NumBases is the fixed number of bases defended in a session.
const NumBases = 3

const crosshairSize = 6

var (
	_ entity.Entity = (*Missile)(nil)
	_ entity.Entity = (*Explosion)(nil)
)

// Session is one single-player game. It exclusively owns its missiles,
// explosions and bases; nothing outlives it.
type Session struct {
	cfg        config.PlanetaryConfig
	assets     *core.AssetSet
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	spawner    *Scheduler
	tickRate   int

	enemies    *entity.Collection[*Missile]
	friendlies *entity.Collection[*Missile]
	explosions *entity.Collection[*Explosion]
	bases      [NumBases]Base

	frames     int
	pointer    core.Vec2
	intercepts int
	launched   int
}

// NewSession creates a session with three intact bases and an empty sky.
// cfg is expected to have passed config validation; assets must be complete.
func NewSession(cfg config.PlanetaryConfig, rt core.RuntimeConfig, assets *core.AssetSet) *Session {
	dm := config.NewDifficultyManager(cfg.Difficulty)
	s := &Session{
		cfg:        cfg,
		assets:     assets,
		rng:        rand.New(rand.NewSource(rt.Seed)),
		difficulty: dm,
		spawner:    NewScheduler(cfg.Spawn, dm),
		tickRate:   rt.TicksPerSecond(),
		enemies:    entity.New[*Missile](16),
		friendlies: entity.New[*Missile](16),
		explosions: entity.New[*Explosion](32),
		pointer:    core.V(float64(cfg.World.Width)/2, float64(cfg.World.Height)/2),
	}
	for i := range s.bases {
		s.bases[i] = NewBase(cfg.Bases.Positions[i], cfg.Bases.Width, cfg.Bases.Heights)
	}
	return s
}

// Tick runs one simulation step and draws it into dst. dst is not presented.
func (s *Session) Tick(in core.InputFrame, dst core.Canvas) Outcome {
	// Input
	if in.Key == core.KeyEsc {
		return OutcomeAbandoned
	}
	s.pointer = in.Pointer

	// Friendly spawn
	if in.ButtonEdge(core.ButtonLeft) {
		s.fire(s.cfg.Cannons.LeftX)
	}
	if in.ButtonEdge(core.ButtonRight) {
		s.fire(s.cfg.Cannons.RightX)
	}

	// Enemy spawn
	s.frames++
	if s.spawner.Due(s.frames) {
		s.spawnEnemy()
		s.spawner.Reschedule(s.frames, s.Score())
	}

	// Advance and draw
	dst.Blit(s.assets.GameBackground, 0, 0, core.AlignLeft)
	for i := range s.bases {
		s.bases[i].Render(dst, &s.assets.Buildings, s.cfg.World.GroundY)
	}
	s.drawCrosshair(dst)

	// Arrived enemies stay in the sky until the collision passes have seen them
	s.enemies.Each(func(_ int, m *Missile) {
		m.Render(dst)
		m.Advance()
	})
	s.friendlies.Sweep(func(m *Missile) bool {
		m.Render(dst)
		if !m.Advance() {
			return false
		}
		s.detonate(m)
		return true
	})
	s.explosions.Sweep(func(e *Explosion) bool {
		e.Render(dst)
		return e.Advance()
	})

	s.resolveCollisions()

	s.drawHUD(dst)

	if s.Lives() == 0 {
		return OutcomeGameOver
	}
	return OutcomeRunning
}

func (s *Session) fire(cannonX int) {
	origin := core.V(float64(cannonX), float64(s.cfg.World.GroundY-s.cfg.Cannons.MuzzleOffset))
	m := NewMissile(origin, s.pointer, SideFriendly, s.cfg.Missiles.FriendlySpeed, core.ColorGreen)
	m.setStyle(s.cfg.Missiles.Thickness, s.cfg.Missiles.TipRadius)
	s.friendlies.PushBack(m)
	s.launched++
}

// spawnEnemy launches a missile from a random point on the top edge toward the
// centre of a random base, one pixel above the ground.
func (s *Session) spawnEnemy() {
	origin := core.V(float64(s.rng.Intn(s.cfg.World.Width)), 0)
	b := s.bases[s.rng.Intn(NumBases)]
	target := core.V(float64(b.X), float64(s.cfg.World.GroundY-1))
	speed := s.difficulty.Speed(s.cfg.Missiles.EnemySpeed, s.Score(), s.frames)

	m := NewMissile(origin, target, SideEnemy, speed, core.ColorRed)
	m.setStyle(s.cfg.Missiles.Thickness, s.cfg.Missiles.TipRadius)
	s.enemies.PushBack(m)
}

func (s *Session) newExplosion(at core.Vec2) *Explosion {
	return NewExplosion(at, s.assets.Explosion, s.cfg.Explosions.Frames, s.cfg.Explosions.MaxRadius)
}

func (s *Session) drawCrosshair(dst core.Canvas) {
	x, y := s.pointer.Round()
	dst.Line(x-crosshairSize, y, x+crosshairSize, y, core.ColorBrightWhite)
	dst.Line(x, y-crosshairSize, x, y+crosshairSize, core.ColorBrightWhite)
}

// drawHUD shows one heart per living base on the left and the score on the right.
func (s *Session) drawHUD(dst core.Canvas) {
	hw, _ := s.assets.Heart.Size()
	for i := range s.Lives() {
		dst.Blit(s.assets.Heart, 10+i*(hw+4), 10, core.AlignLeft)
	}
	core.DrawNumber(dst, &s.assets.Digits, s.Score(), s.cfg.World.Width-10, 10)
}

// Frames returns the number of ticks played.
func (s *Session) Frames() int {
	return s.frames
}

// Score is the number of whole seconds survived.
func (s *Session) Score() int {
	return s.frames / s.tickRate
}

// NextSpawnFrame returns the frame of the next enemy spawn.
func (s *Session) NextSpawnFrame() int {
	return s.spawner.Next()
}

// Lives counts the bases that are not destroyed.
func (s *Session) Lives() int {
	n := 0
	for i := range s.bases {
		if s.bases[i].Alive() {
			n++
		}
	}
	return n
}

// Bases returns a copy of the base array.
func (s *Session) Bases() [NumBases]Base {
	return s.bases
}

// Intercepts counts enemy missiles destroyed by explosions.
func (s *Session) Intercepts() int {
	return s.intercepts
}

// Launched counts friendly missiles fired.
func (s *Session) Launched() int {
	return s.launched
}

func (s *Session) EnemyMissiles() *entity.Collection[*Missile]    { return s.enemies }
func (s *Session) FriendlyMissiles() *entity.Collection[*Missile] { return s.friendlies }
func (s *Session) Explosions() *entity.Collection[*Explosion]     { return s.explosions }
