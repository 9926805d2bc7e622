package bakery

import (
	"time"

	"github.com/vovakirdan/bakery-catch/internal/audio"
	"github.com/vovakirdan/bakery-catch/internal/config"
	"github.com/vovakirdan/bakery-catch/internal/core"
)

// Outcome is the classification of one item on one tick.
type Outcome int

const (
	OutcomeNone  Outcome = iota // Still falling
	OutcomeCatch                // Good item caught
	OutcomeBurnt                // Burnt toast caught
	OutcomeRock                 // Rock caught
	OutcomeMiss                 // Fell past the floor
)

// CatchZone returns the catch band for a player target. It follows the target
// rather than the smoothed position so hits do not lag behind the animation.
func CatchZone(cfg config.BakeryConfig, target float64) core.RectF {
	tol := cfg.CatchZone.Tolerance
	return core.NewRectF(target-tol, cfg.CatchZone.Top, cfg.Player.Width+2*tol, cfg.CatchZone.Height)
}

// Classify decides an item's fate after it has moved. A hit is checked before
// a miss and at most one outcome applies.
func Classify(it Item, zone core.RectF, itemSize, missY float64) Outcome {
	// The item's top must sit inside the zone band; its width only has to
	// overlap horizontally.
	footprint := core.NewRectF(it.X, zone.Y, itemSize, zone.H)
	hit := zone.Contains(zone.X, it.Y) && zone.Intersects(footprint)
	if hit {
		switch it.Kind {
		case KindRock:
			return OutcomeRock
		case KindBurntToast:
			return OutcomeBurnt
		default:
			return OutcomeCatch
		}
	}
	if it.Y > missY {
		return OutcomeMiss
	}
	return OutcomeNone
}

// stepItems advances every item and resolves catches and misses in place.
// If the round ends part way through, the remaining items are left untouched.
func (g *Game) stepItems(now time.Time) {
	zone := CatchZone(g.cfg, g.player.Target)
	missY := g.cfg.World.Height + g.cfg.Items.MissMargin

	kept := g.items[:0]
	for _, it := range g.items {
		if g.machine.Phase() != PhasePlaying {
			kept = append(kept, it)
			continue
		}

		it.Y += it.Speed
		it.Rotation = core.WrapDegrees(it.Rotation + g.cfg.Items.RotationStep)

		switch Classify(it, zone, g.cfg.Items.Size, missY) {
		case OutcomeRock:
			g.cues.Play(audio.CueBad)
			g.stats.Rocks++
			g.burst(it)
			if g.ledger.LoseLife() {
				g.endRound(now)
			}
		case OutcomeBurnt:
			g.cues.Play(audio.CueBad)
			g.stats.Burnt++
			g.ledger.ApplyScoreDelta(it.Kind.Info().ScoreDelta)
			g.burst(it)
		case OutcomeCatch:
			g.cues.Play(audio.CueCatch)
			g.stats.Caught++
			g.ledger.ApplyScoreDelta(it.Kind.Info().ScoreDelta)
			g.player.MarkCaught(now)
			g.burst(it)
		case OutcomeMiss:
			if it.Kind.Good() {
				g.stats.Dropped++
				g.ledger.ApplyScoreDelta(-g.cfg.Items.MissPenalty)
			}
		default:
			kept = append(kept, it)
		}
	}
	// Clear the tail so removed items are not retained by the backing array.
	for i := len(kept); i < len(g.items); i++ {
		g.items[i] = Item{}
	}
	g.items = kept
}

// burst emits a particle burst at the item's position in its color.
func (g *Game) burst(it Item) {
	spread := g.cfg.Particles.Spread
	for i := 0; i < g.cfg.Particles.Burst; i++ {
		g.nextParticleID++
		g.particles = append(g.particles, Particle{
			ID:  g.nextParticleID,
			Pos: core.Vec2{X: it.X, Y: it.Y},
			Vel: core.Vec2{
				X: (g.rng.Float64() - 0.5) * spread,
				Y: (g.rng.Float64() - 0.5) * spread,
			},
			Life:  g.cfg.Particles.Life,
			Color: it.Kind.Info().Color,
		})
	}
}

// AgeParticles moves each particle, decays its life and drops the spent ones.
func AgeParticles(ps []Particle, decay float64) []Particle {
	kept := ps[:0]
	for _, p := range ps {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= decay
		if p.Life > lifeEpsilon {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(ps); i++ {
		ps[i] = Particle{}
	}
	return kept
}
