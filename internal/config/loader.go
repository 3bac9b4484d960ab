package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a session.
var ErrInvalidConfig = errors.New("invalid config")

// LoadPlanetary loads the planetary configuration.
// Search order: customPath -> ~/.planetary/configs/planetary.yaml -> ./configs/planetary.yaml -> embedded default
func LoadPlanetary(customPath string) (PlanetaryConfig, error) {
	// Start from the defaults so a partial file only overrides what it names
	cfg := DefaultPlanetaryConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("planetary.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if c, ok := parseValid(data); ok {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/planetary.yaml"); err == nil {
		if c, ok := parseValid(data); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if c, ok := parseValid(defaultPlanetaryYAML); ok {
		return c, nil
	}
	return DefaultPlanetaryConfig(), nil // Fallback to hardcoded if embed fails
}

func parseValid(data []byte) (PlanetaryConfig, bool) {
	cfg := DefaultPlanetaryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, cfg.Validate() == nil
}

// Validate reports the first setting that would break the simulation.
func (c *PlanetaryConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %dx%d", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.World.GroundY <= 0 || c.World.GroundY > c.World.Height:
		return fmt.Errorf("%w: ground_y %d outside the world", ErrInvalidConfig, c.World.GroundY)
	case len(c.Bases.Positions) != 3:
		return fmt.Errorf("%w: expected 3 base positions, got %d", ErrInvalidConfig, len(c.Bases.Positions))
	case c.Bases.Width <= 0:
		return fmt.Errorf("%w: base width %d", ErrInvalidConfig, c.Bases.Width)
	case c.Missiles.FriendlySpeed <= 0 || c.Missiles.EnemySpeed <= 0:
		return fmt.Errorf("%w: missile speeds must be positive", ErrInvalidConfig)
	case c.Explosions.Frames <= 0:
		return fmt.Errorf("%w: explosion frames %d", ErrInvalidConfig, c.Explosions.Frames)
	case c.Spawn.MinInterval < 1:
		return fmt.Errorf("%w: spawn min_interval %d", ErrInvalidConfig, c.Spawn.MinInterval)
	case c.Spawn.FirstFrame < 1:
		return fmt.Errorf("%w: spawn first_frame %d", ErrInvalidConfig, c.Spawn.FirstFrame)
	}
	for i, h := range c.Bases.Heights {
		if h < 0 || h >= c.World.GroundY {
			return fmt.Errorf("%w: base height %d for level %d", ErrInvalidConfig, h, i)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planetary", "configs", filename)
}

// ApplyPlanetaryPreset modifies the config based on a difficulty preset.
func ApplyPlanetaryPreset(cfg *PlanetaryConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Missiles.FriendlySpeed = 10
		cfg.Explosions.MaxRadius = 40
	case DifficultyHard:
		cfg.Spawn.FirstFrame = 60
		cfg.Explosions.MaxRadius = 26
		cfg.Difficulty.Scaling.IntervalReduction = 0.5
	}
}
