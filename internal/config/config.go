// Package config provides YAML-based game configuration loading and
// difficulty management for planetary.
package config

// PlanetaryConfig contains all tunables of a single-player session.
type PlanetaryConfig struct {
	World      WorldConfig      `yaml:"world"`
	Cannons    CannonConfig     `yaml:"cannons"`
	Missiles   MissileConfig    `yaml:"missiles"`
	Explosions ExplosionConfig  `yaml:"explosions"`
	Bases      BaseConfig       `yaml:"bases"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical playfield in world pixels.
type WorldConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"` // Enemy missiles at or below this line detonate
}

// CannonConfig defines where friendly missiles are launched from.
type CannonConfig struct {
	LeftX        int `yaml:"left_x"`
	RightX       int `yaml:"right_x"`
	MuzzleOffset int `yaml:"muzzle_offset"` // Height of the muzzle above the ground
}

// MissileConfig defines missile speeds (world pixels per tick) and looks.
type MissileConfig struct {
	FriendlySpeed float64 `yaml:"friendly_speed"`
	EnemySpeed    float64 `yaml:"enemy_speed"`
	Thickness     int     `yaml:"thickness"`
	TipRadius     int     `yaml:"tip_radius"`
}

// ExplosionConfig defines the explosion animation.
type ExplosionConfig struct {
	Frames    int     `yaml:"frames"`
	MaxRadius float64 `yaml:"max_radius"`
}

// BaseConfig defines the destructible buildings.
type BaseConfig struct {
	Width     int    `yaml:"width"`
	Heights   [3]int `yaml:"heights"`   // Footprint height per integrity level 0, 1, 2
	Positions []int  `yaml:"positions"` // Centre x of each base
}

// SpawnConfig defines the enemy spawn schedule:
// next = elapsed + max(min_interval, k / (elapsed + c)).
type SpawnConfig struct {
	FirstFrame  int     `yaml:"first_frame"`
	K           float64 `yaml:"k"`
	C           float64 `yaml:"c"`
	MinInterval int     `yaml:"min_interval"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to enemy speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
