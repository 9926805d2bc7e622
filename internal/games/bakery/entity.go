package bakery

import "github.com/vovakirdan/bakery-catch/internal/core"

// Item is a falling item. Speed is fixed at spawn and never recomputed.
type Item struct {
	ID       uint64
	X        float64 // Left edge, in [0, world width - item size]
	Y        float64 // Top edge, grows downward
	Kind     Kind
	Rotation float64 // Degrees in [0, 360), cosmetic
	Speed    float64
}

// Particle is a cosmetic burst fragment.
type Particle struct {
	ID    uint64
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64 // In (0, 1], decays every tick
	Color core.Color
}

// lifeEpsilon absorbs float drift from repeated decay subtraction.
const lifeEpsilon = 1e-9
