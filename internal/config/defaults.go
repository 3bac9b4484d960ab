package config

import (
	_ "embed"
)

//go:embed defaults/planetary.yaml
var defaultPlanetaryYAML []byte

// DefaultPlanetaryConfig returns the hardcoded planetary configuration.
// It mirrors defaults/planetary.yaml and is used when the embedded file cannot be parsed.
func DefaultPlanetaryConfig() PlanetaryConfig {
	return PlanetaryConfig{
		World: WorldConfig{
			Width:   800,
			Height:  600,
			GroundY: 595,
		},
		Cannons: CannonConfig{
			LeftX:        5,
			RightX:       795,
			MuzzleOffset: 32,
		},
		Missiles: MissileConfig{
			FriendlySpeed: 8.0,
			EnemySpeed:    1.0,
			Thickness:     2,
			TipRadius:     3,
		},
		Explosions: ExplosionConfig{
			Frames:    16,
			MaxRadius: 32,
		},
		Bases: BaseConfig{
			Width:     160,
			Heights:   [3]int{16, 48, 76},
			Positions: []int{200, 400, 600},
		},
		Spawn: SpawnConfig{
			FirstFrame:  120,
			K:           256000,
			C:           512,
			MinInterval: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.5,
				IntervalReduction: 0, // hard preset only
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlanetaryYAML
}
