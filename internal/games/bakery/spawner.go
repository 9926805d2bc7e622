package bakery

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bakery-catch/internal/config"
)

// PickKind maps a uniform draw in [0, 1) to a kind. The thresholds are
// evaluated from the top of the range down so rocks take the smallest slice.
func PickKind(r float64) Kind {
	switch {
	case r > 0.9:
		return KindRock
	case r > 0.8:
		return KindBurntToast
	case r > 0.5:
		return KindBaguette
	default:
		return KindCroissant
	}
}

// Spawner creates falling items on a score-scaled cadence.
type Spawner struct {
	rng        *rand.Rand
	items      config.ItemsConfig
	worldW     float64
	difficulty *config.DifficultyManager
	lastSpawn  time.Time
	nextID     uint64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.BakeryConfig, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		rng:        rng,
		items:      cfg.Items,
		worldW:     cfg.World.Width,
		difficulty: diff,
	}
}

// Reset forgets the last spawn time, so the next Due check fires at once.
// Item ids keep counting so they stay unique for the life of the spawner.
func (s *Spawner) Reset() {
	s.lastSpawn = time.Time{}
}

// Due reports whether more than the current spawn interval has passed since
// the last spawn.
func (s *Spawner) Due(now time.Time, score int) bool {
	if s.lastSpawn.IsZero() {
		return true
	}
	return now.Sub(s.lastSpawn) > s.difficulty.SpawnInterval(score)
}

// Spawn creates one item above the top edge and records now as the spawn time.
func (s *Spawner) Spawn(now time.Time, score int) Item {
	s.lastSpawn = now
	s.nextID++

	kind := PickKind(s.rng.Float64())
	return Item{
		ID:       s.nextID,
		X:        s.rng.Float64() * (s.worldW - s.items.Size),
		Y:        s.items.SpawnOffset,
		Kind:     kind,
		Rotation: s.rng.Float64() * 360,
		Speed:    s.difficulty.ItemSpeed(s.rng.Float64(), score),
	}
}
