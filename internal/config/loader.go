package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is the project-relative override location.
const localConfigPath = "configs/bakery.yaml"

// LoadBakery loads the game configuration.
// Search order: customPath -> ~/.bakery/configs/bakery.yaml -> ./configs/bakery.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only changes the keys it names.
func LoadBakery(customPath string) (BakeryConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BakeryConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BakeryConfig{}, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bakery.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBakeryYAML)
	if err != nil {
		return DefaultBakeryConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// parse overlays YAML onto the built-in defaults and validates the result.
func parse(data []byte) (BakeryConfig, error) {
	cfg := DefaultBakeryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BakeryConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BakeryConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg BakeryConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bakery", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c BakeryConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world must have positive size, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("player width %v must be in (0, world width]", c.Player.Width))
	}
	if c.Player.Smoothing <= 0 || c.Player.Smoothing >= 1 {
		errs = append(errs, fmt.Errorf("player smoothing %v must be in (0, 1)", c.Player.Smoothing))
	}
	if c.Items.Size <= 0 || c.Items.Size >= c.World.Width {
		errs = append(errs, fmt.Errorf("item size %v must be in (0, world width)", c.Items.Size))
	}
	if c.Items.SpawnOffset > -c.Items.Size {
		errs = append(errs, fmt.Errorf("spawn offset %v must place items fully above the top edge", c.Items.SpawnOffset))
	}
	if c.Spawn.MinIntervalMS < SpawnFloorMS || c.Spawn.BaseIntervalMS < c.Spawn.MinIntervalMS {
		errs = append(errs, fmt.Errorf("spawn intervals must satisfy %d <= min (%d) <= base (%d)", SpawnFloorMS, c.Spawn.MinIntervalMS, c.Spawn.BaseIntervalMS))
	}
	if c.Physics.GravityBase <= 0 || c.Physics.SpeedJitter < 0 || c.Physics.ScoreDivisor <= 0 {
		errs = append(errs, errors.New("physics needs gravity_base > 0, speed_jitter >= 0, score_divisor > 0"))
	}
	if c.CatchZone.Height <= 0 {
		errs = append(errs, fmt.Errorf("catch zone height %v must be positive", c.CatchZone.Height))
	}
	if c.Particles.Burst < 0 || c.Particles.Decay <= 0 || c.Particles.Life <= 0 {
		errs = append(errs, errors.New("particles need burst >= 0, decay > 0, life > 0"))
	}
	if c.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives %d must be positive", c.Lives))
	}
	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Lives are left alone; presets only change pacing.
func ApplyPreset(cfg *BakeryConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.BaseIntervalMS = 1000
		cfg.Physics.GravityBase = 2.5
	case DifficultyHard:
		cfg.Spawn.BaseIntervalMS = 600
		cfg.Physics.GravityBase = 4
	}
	if cfg.Spawn.BaseIntervalMS < cfg.Spawn.MinIntervalMS {
		cfg.Spawn.BaseIntervalMS = cfg.Spawn.MinIntervalMS
	}
}
