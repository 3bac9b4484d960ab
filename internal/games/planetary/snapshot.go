package planetary

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/planetary/internal/entity"
)

// Snapshot captures the session state for determinism testing and headless runs.
type Snapshot struct {
	Frames     int
	Score      int
	NextSpawn  int
	Lives      int
	Integrity  [NumBases]int
	Enemies    int
	Friendlies int
	Explosions int
	Intercepts int
	Launched   int

	// Tips holds every missile tip, enemies first, as x, y pairs.
	Tips []float64
}

// Snapshot returns the current state summary.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frames:     s.frames,
		Score:      s.Score(),
		NextSpawn:  s.spawner.Next(),
		Lives:      s.Lives(),
		Enemies:    s.enemies.Len(),
		Friendlies: s.friendlies.Len(),
		Explosions: s.explosions.Len(),
		Intercepts: s.intercepts,
		Launched:   s.launched,
		Tips:       make([]float64, 0, 2*(s.enemies.Len()+s.friendlies.Len())),
	}
	for i := range s.bases {
		snap.Integrity[i] = s.bases[i].Integrity
	}
	for _, c := range []*entity.Collection[*Missile]{s.enemies, s.friendlies} {
		c.Each(func(_ int, m *Missile) {
			p := m.Position()
			snap.Tips = append(snap.Tips, p.X, p.Y)
		})
	}
	return snap
}

// Hash folds the snapshot into a 64-bit FNV-1a digest.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	for _, v := range []int{s.Frames, s.Score, s.NextSpawn, s.Lives, s.Enemies, s.Friendlies, s.Explosions, s.Intercepts, s.Launched} {
		put(uint64(v))
	}
	for _, v := range s.Integrity {
		put(uint64(v))
	}
	for _, f := range s.Tips {
		put(math.Float64bits(f))
	}
	return h.Sum64()
}
