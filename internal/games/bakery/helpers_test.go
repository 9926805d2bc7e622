package bakery

import (
	"testing"
	"time"

	"github.com/vovakirdan/bakery-catch/internal/audio"
	"github.com/vovakirdan/bakery-catch/internal/config"
	"github.com/vovakirdan/bakery-catch/internal/core"
)

var testNow = time.Unix(1_700_000_000, 0)

type cueRecorder struct {
	cues []audio.Cue
}

func (r *cueRecorder) Play(c audio.Cue) {
	r.cues = append(r.cues, c)
}

func (r *cueRecorder) count(c audio.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// newTestGame returns a game in the menu with default config, a frozen clock
// and a cue recorder.
func newTestGame(t *testing.T) (*Game, *cueRecorder) {
	t.Helper()
	rec := &cueRecorder{}
	g := New(
		WithConfig(config.DefaultBakeryConfig()),
		WithCues(rec),
		WithClock(func() time.Time { return testNow }),
	)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g, rec
}

// startQuiet starts a round and suppresses spawning while the clock is frozen.
func startQuiet(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	g.spawner.lastSpawn = testNow
}

func tickN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick(testNow, core.NewInputFrame())
	}
}
