package core

import "time"

// RuntimeConfig contains configuration passed by the platform to the simulation.
// The simulation uses this for its tick rate and for deterministic randomness;
// ScreenW/ScreenH describe the host surface (cells or pixels), not the world.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width in characters or pixels
	ScreenH  int   // Host surface height in characters or pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time, see ResolveSeed
	}
}

// TicksPerSecond returns TickRate, falling back to 60 when unset.
func (c RuntimeConfig) TicksPerSecond() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
}

// ResolveSeed returns c with a zero Seed replaced by one taken from now.
// Every host calls it once, before the first session is created.
func (c RuntimeConfig) ResolveSeed(now time.Time) RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	return c
}
