package bakery

import (
	"time"

	"github.com/vovakirdan/bakery-catch/internal/flavor"
)

// PlayerView is the read-only view of the player.
type PlayerView struct {
	X           float64
	Target      float64
	MovingLeft  bool
	MovingRight bool
	Caught      bool
}

// Snapshot is a copy of everything the presentation layer may read.
// Mutating it has no effect on the game.
type Snapshot struct {
	Phase     Phase
	Score     int
	Lives     int
	Player    PlayerView
	Items     []Item
	Particles []Particle
	Text      flavor.Text
}

// Snapshot copies the current state. Caught is evaluated against now.
func (g *Game) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		Phase: g.machine.Phase(),
		Score: g.ledger.Score(),
		Lives: g.ledger.Lives(),
		Player: PlayerView{
			X:           g.player.X,
			Target:      g.player.Target,
			MovingLeft:  g.player.MovingLeft,
			MovingRight: g.player.MovingRight,
			Caught:      g.player.Caught(now, g.cfg.Player.CaughtFlash()),
		},
		Items:     append([]Item(nil), g.items...),
		Particles: append([]Particle(nil), g.particles...),
		Text:      g.text,
	}
}
