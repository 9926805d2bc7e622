package bakery

import "time"

// Player is the catcher. Position chases Target with exponential smoothing;
// the direction flags are recomputed on every Update.
type Player struct {
	X           float64
	Target      float64
	MovingLeft  bool
	MovingRight bool

	caughtAt time.Time
}

// NewPlayer places the player and its target at x.
func NewPlayer(x float64) Player {
	return Player{X: x, Target: x}
}

// SetTarget stores an already clamped target.
func (p *Player) SetTarget(x float64) {
	p.Target = x
}

// Update moves X a fraction of the way to Target. For a smoothing factor in
// (0, 1) it never overshoots.
func (p *Player) Update(smoothing, deadZone float64) {
	prev := p.X
	p.X += (p.Target - p.X) * smoothing
	p.MovingLeft = p.X < prev-deadZone
	p.MovingRight = p.X > prev+deadZone
}

// MarkCaught starts the caught bounce at now.
func (p *Player) MarkCaught(now time.Time) {
	p.caughtAt = now
}

// Caught reports whether now falls inside the bounce window.
func (p Player) Caught(now time.Time, flash time.Duration) bool {
	if p.caughtAt.IsZero() {
		return false
	}
	return now.Sub(p.caughtAt) < flash
}
