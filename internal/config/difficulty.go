package config

import "time"

// SpawnFloorMS is the shortest spawn interval any configuration may produce.
const SpawnFloorMS = 200

// DifficultyManager derives the score-scaled spawn cadence and fall speed.
type DifficultyManager struct {
	spawn   SpawnConfig
	physics PhysicsConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(spawn SpawnConfig, physics PhysicsConfig) *DifficultyManager {
	return &DifficultyManager{
		spawn:   spawn,
		physics: physics,
	}
}

// SpawnInterval returns max(min, base - score*step). It never drops below
// the configured floor, nor below SpawnFloorMS, however high the score climbs.
func (d *DifficultyManager) SpawnInterval(score int) time.Duration {
	ms := d.spawn.BaseIntervalMS - score*d.spawn.IntervalStepMS
	if floor := max(d.spawn.MinIntervalMS, SpawnFloorMS); ms < floor {
		ms = floor
	}
	return time.Duration(ms) * time.Millisecond
}

// SpeedMultiplier returns 1 + score/divisor. It is uncapped.
func (d *DifficultyManager) SpeedMultiplier(score int) float64 {
	return 1 + float64(score)/d.physics.ScoreDivisor
}

// ItemSpeed returns (draw + gravity) * multiplier for a draw in [0, 1),
// where the draw is scaled to the configured jitter range.
func (d *DifficultyManager) ItemSpeed(draw float64, score int) float64 {
	return (draw*d.physics.SpeedJitter + d.physics.GravityBase) * d.SpeedMultiplier(score)
}
