package planetary

import (
	"github.com/vovakirdan/planetary/internal/config"
)

// Scheduler decides on which frames enemy missiles appear.
// After a spawn at frame f the next one is due at
//
//	f + max(MinInterval, K / (f + C))
//
// so spawns accelerate as the game goes on. A difficulty manager that shortens
// spawns (the hard preset) cuts the decayed interval further but never below
// MinInterval.
type Scheduler struct {
	cfg        config.SpawnConfig
	difficulty *config.DifficultyManager
	next       int
}

// NewScheduler schedules the first spawn at cfg.FirstFrame.
func NewScheduler(cfg config.SpawnConfig, difficulty *config.DifficultyManager) *Scheduler {
	return &Scheduler{
		cfg:        cfg,
		difficulty: difficulty,
		next:       max(1, cfg.FirstFrame),
	}
}

// Next returns the frame of the next scheduled spawn.
func (s *Scheduler) Next() int {
	return s.next
}

// Due reports whether a spawn happens on frame.
func (s *Scheduler) Due(frame int) bool {
	return frame == s.next
}

// Reschedule computes the next spawn after a spawn on frame and returns it.
func (s *Scheduler) Reschedule(frame, score int) int {
	interval := s.cfg.K / (float64(frame) + s.cfg.C)
	if s.difficulty != nil && s.difficulty.ShortensSpawns() {
		interval = s.difficulty.Interval(interval, score, frame)
	}
	s.next = frame + max(1, s.cfg.MinInterval, int(interval))
	return s.next
}
