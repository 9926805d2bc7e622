// Package config provides YAML-based game configuration loading and
// difficulty management for the bakery game.
package config

import "time"

// BakeryConfig contains all tunable constants of the catching game.
// World units are logical pixels; the renderer scales them to the terminal.
type BakeryConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Items     ItemsConfig     `yaml:"items"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Physics   PhysicsConfig   `yaml:"physics"`
	CatchZone CatchZoneConfig `yaml:"catch_zone"`
	Particles ParticleConfig  `yaml:"particles"`
	Lives     int             `yaml:"lives"`
	Flavor    FlavorConfig    `yaml:"flavor"`
}

// WorldConfig defines the logical play field.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the catcher and its motion smoothing.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Smoothing     float64 `yaml:"smoothing"`       // Fraction of the remaining distance covered per tick
	DeadZone      float64 `yaml:"dead_zone"`       // Per-tick delta below which no direction is reported
	CaughtFlashMS int     `yaml:"caught_flash_ms"` // Real-time length of the "just caught" bounce
	KeyStep       float64 `yaml:"key_step"`        // Target shift per keyboard nudge
}

// CaughtFlash returns the caught-flag duration.
func (p PlayerConfig) CaughtFlash() time.Duration {
	return time.Duration(p.CaughtFlashMS) * time.Millisecond
}

// ItemsConfig defines falling item geometry and miss handling.
type ItemsConfig struct {
	Size         float64 `yaml:"size"`
	SpawnOffset  float64 `yaml:"spawn_offset"`  // Y at spawn, negative is above the top edge
	RotationStep float64 `yaml:"rotation_step"` // Degrees per tick
	MissMargin   float64 `yaml:"miss_margin"`   // Distance below the world floor before removal
	MissPenalty  int     `yaml:"miss_penalty"`  // Score lost when a good item is dropped
}

// SpawnConfig defines the spawn cadence.
type SpawnConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	IntervalStepMS int `yaml:"interval_step_ms"` // Interval reduction per point of score
}

// PhysicsConfig defines fall speed parameters.
type PhysicsConfig struct {
	GravityBase  float64 `yaml:"gravity_base"`
	SpeedJitter  float64 `yaml:"speed_jitter"`  // Upper bound of the uniform speed draw
	ScoreDivisor float64 `yaml:"score_divisor"` // Speed multiplier is 1 + score/divisor
}

// CatchZoneConfig defines the band where items are caught.
type CatchZoneConfig struct {
	Top       float64 `yaml:"top"`
	Height    float64 `yaml:"height"`
	Tolerance float64 `yaml:"tolerance"` // Extra reach on each side of the player
}

// ParticleConfig defines collision bursts.
type ParticleConfig struct {
	Burst  int     `yaml:"burst"`
	Life   float64 `yaml:"life"`
	Decay  float64 `yaml:"decay"`
	Spread float64 `yaml:"spread"` // Velocity components are uniform in [-spread/2, spread/2)
}

// FlavorConfig defines the end-of-round text service.
type FlavorConfig struct {
	Endpoint       string `yaml:"endpoint"`
	Model          string `yaml:"model"`
	TimeoutMS      int    `yaml:"timeout_ms"`
	RewardMinScore int    `yaml:"reward_min_score"` // Reward text is skipped below this score
}

// Timeout returns the per-request deadline.
func (f FlavorConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutMS) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset; unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
