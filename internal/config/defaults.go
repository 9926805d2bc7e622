package config

import (
	_ "embed"
)

//go:embed defaults/bakery.yaml
var defaultBakeryYAML []byte

// DefaultBakeryConfig returns the default configuration.
// It mirrors defaults/bakery.yaml and is used when the embedded file fails to parse.
func DefaultBakeryConfig() BakeryConfig {
	return BakeryConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:         100,
			Height:        120,
			Smoothing:     0.15,
			DeadZone:      0.5,
			CaughtFlashMS: 150,
			KeyStep:       40,
		},
		Items: ItemsConfig{
			Size:         50,
			SpawnOffset:  -200,
			RotationStep: 1,
			MissMargin:   100,
			MissPenalty:  2,
		},
		Spawn: SpawnConfig{
			BaseIntervalMS: 800,
			MinIntervalMS:  200,
			IntervalStepMS: 5,
		},
		Physics: PhysicsConfig{
			GravityBase:  3,
			SpeedJitter:  2,
			ScoreDivisor: 100,
		},
		CatchZone: CatchZoneConfig{
			Top:       460,
			Height:    50,
			Tolerance: 10,
		},
		Particles: ParticleConfig{
			Burst:  8,
			Life:   1.0,
			Decay:  0.05,
			Spread: 10,
		},
		Lives: 3,
		Flavor: FlavorConfig{
			Endpoint:       "https://generativelanguage.googleapis.com/v1beta",
			Model:          "gemini-2.5-flash",
			TimeoutMS:      8000,
			RewardMinScore: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBakeryYAML
}
