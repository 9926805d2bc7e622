// Package bakery implements Eggie's Bakery, a catching game: move the egg
// left and right to catch falling bread, avoid burnt toast, and never catch
// a rock. Three rocks end the round.
package bakery

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/bakery-catch/internal/audio"
	"github.com/vovakirdan/bakery-catch/internal/config"
	"github.com/vovakirdan/bakery-catch/internal/core"
	"github.com/vovakirdan/bakery-catch/internal/flavor"
	"github.com/vovakirdan/bakery-catch/internal/registry"
)

// GameID is the registry identifier.
const GameID = "bakery"

// RoundStats counts what happened during one round.
type RoundStats struct {
	Caught  int // Good items caught
	Burnt   int // Burnt toast caught
	Rocks   int // Rocks caught
	Dropped int // Good items missed
	Ticks   int
}

// RoundResult describes a finished round.
type RoundResult struct {
	Round     int
	Score     int
	Stats     RoundStats
	StartedAt time.Time
	EndedAt   time.Time
}

// FlavorRequest identifies the round a text request belongs to.
type FlavorRequest struct {
	Round int
	Score int
}

// Game implements the bakery simulation.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.BakeryConfig
	fixedCfg   bool // Config supplied by WithConfig, skip loading on Reset
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	cues       audio.Player
	clock      func() time.Time

	machine *Machine
	frames  core.FrameScheduler

	ledger         Ledger
	player         Player
	spawner        *Spawner
	items          []Item
	particles      []Particle
	nextParticleID uint64

	round     int
	startedAt time.Time
	stats     RoundStats
	result    *RoundResult
	text      flavor.Text
	requested bool // Flavor text already requested this round
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading configuration on Reset.
func WithConfig(cfg config.BakeryConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixedCfg = true
	}
}

// WithCues routes audio cues to p.
func WithCues(p audio.Player) Option {
	return func(g *Game) { g.cues = p }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.clock = now }
}

// New creates a new game instance in the menu.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:   config.DefaultBakeryConfig(),
		cues:  audio.Nop{},
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.machine = NewMachine(g.frames.Stop)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Eggie's Bakery"
}

// Config returns the active configuration.
func (g *Game) Config() config.BakeryConfig {
	return g.cfg
}

// Reset applies runtime settings, reloads configuration and returns to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, _, err := config.LoadBakery(configPath)
		if err != nil {
			cfg = config.DefaultBakeryConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Spawn, g.cfg.Physics)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawner = NewSpawner(g.rng, g.cfg, g.difficulty)
	g.machine.reset()
	g.clearRound()
}

// clearRound puts every per-round value back to its initial state.
func (g *Game) clearRound() {
	g.ledger = NewLedger(g.cfg.Lives)
	g.player = NewPlayer(g.centerX())
	g.items = g.items[:0]
	g.particles = g.particles[:0]
	g.stats = RoundStats{}
	g.result = nil
	g.text = flavor.Text{}
	g.requested = false
	if g.spawner != nil {
		g.spawner.Reset()
	}
}

func (g *Game) centerX() float64 {
	return g.cfg.World.Width/2 - g.cfg.Player.Width/2
}

// SetCues routes audio cues to p. A nil player silences the game.
func (g *Game) SetCues(p audio.Player) {
	if p == nil {
		p = audio.Nop{}
	}
	g.cues = p
}

// Target returns the player's current target position.
func (g *Game) Target() float64 {
	return g.player.Target
}

// ClampTarget bounds a pointer target to the positions the player can occupy.
// It belongs to the input side: the simulation stores targets unclamped.
func (g *Game) ClampTarget(x float64) float64 {
	return core.ClampF(x, 0, g.cfg.World.Width-g.cfg.Player.Width)
}

// Start begins a new round from the menu or the game-over screen.
func (g *Game) Start() error {
	if g.spawner == nil {
		g.Reset(g.runtime)
	}
	if !g.machine.Can(PhasePlaying) {
		return fmt.Errorf("bakery: cannot start from %s: %w", g.machine.Phase(), ErrIllegalTransition)
	}

	g.clearRound()
	g.round++
	g.startedAt = g.clock()
	if err := g.machine.To(PhasePlaying); err != nil {
		return err
	}
	g.frames.Start()
	g.cues.Play(audio.CueStart)
	return nil
}

// Frames exposes the tick scheduler. Ticks carrying a stale frame are dropped.
func (g *Game) Frames() *core.FrameScheduler {
	return &g.frames
}

// Step advances the game by one tick using the game clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Tick(g.clock(), in)
}

// Tick advances the game by one tick at now. Outside PhasePlaying it does
// nothing. The order is fixed: player motion, spawn, items, particles.
func (g *Game) Tick(now time.Time, in core.InputFrame) core.StepResult {
	if g.machine.Phase() != PhasePlaying {
		return core.StepResult{State: g.State()}
	}

	if x, ok := in.Pointer(); ok {
		g.player.SetTarget(x)
	}
	g.stats.Ticks++

	g.player.Update(g.cfg.Player.Smoothing, g.cfg.Player.DeadZone)

	score := g.ledger.Score()
	if g.spawner.Due(now, score) {
		g.items = append(g.items, g.spawner.Spawn(now, score))
	}

	g.stepItems(now)
	if g.machine.Phase() == PhasePlaying {
		g.particles = AgeParticles(g.particles, g.cfg.Particles.Decay)
	}

	return core.StepResult{State: g.State(), Ran: true}
}

// endRound performs the terminal transition. Leaving PhasePlaying stops the
// frame scheduler before the new phase is visible.
func (g *Game) endRound(now time.Time) {
	if err := g.machine.To(PhaseGameOver); err != nil {
		return
	}
	g.cues.Play(audio.CueGameOver)
	g.result = &RoundResult{
		Round:     g.round,
		Score:     g.ledger.Score(),
		Stats:     g.stats,
		StartedAt: g.startedAt,
		EndedAt:   now,
	}
}

// Result returns the last finished round, if the current round has ended.
func (g *Game) Result() (RoundResult, bool) {
	if g.result == nil {
		return RoundResult{}, false
	}
	return *g.result, true
}

// BeginFlavor moves GAME_OVER to LOADING_AI and returns the request to run.
// It returns false if the phase is wrong or text was already requested.
func (g *Game) BeginFlavor() (FlavorRequest, bool) {
	if g.machine.Phase() != PhaseGameOver || g.requested {
		return FlavorRequest{}, false
	}
	if err := g.machine.To(PhaseLoadingAI); err != nil {
		return FlavorRequest{}, false
	}
	g.requested = true
	return FlavorRequest{Round: g.round, Score: g.ledger.Score()}, true
}

// CompleteFlavor stores text for req and returns to GAME_OVER. Results for
// an older round, or arriving outside LOADING_AI, are ignored.
func (g *Game) CompleteFlavor(req FlavorRequest, text flavor.Text) bool {
	if req.Round != g.round || g.machine.Phase() != PhaseLoadingAI {
		return false
	}
	if err := g.machine.To(PhaseGameOver); err != nil {
		return false
	}
	g.text = text
	return true
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.machine.Phase()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.machine.Phase()
	return core.GameState{
		Score:    g.ledger.Score(),
		Lives:    g.ledger.Lives(),
		Phase:    phase.String(),
		GameOver: phase == PhaseGameOver || phase == PhaseLoadingAI,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
