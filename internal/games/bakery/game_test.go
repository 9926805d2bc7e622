package bakery

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/bakery-catch/internal/audio"
	"github.com/vovakirdan/bakery-catch/internal/config"
	"github.com/vovakirdan/bakery-catch/internal/core"
	"github.com/vovakirdan/bakery-catch/internal/flavor"
)

func TestNewGameStartsInMenu(t *testing.T) {
	g, _ := newTestGame(t)

	if g.Phase() != PhaseMenu {
		t.Fatalf("Phase() = %v, want MENU", g.Phase())
	}
	if g.Frames().Running() {
		t.Error("frames running in MENU")
	}

	res := g.Tick(testNow, core.NewInputFrame())
	if res.Ran {
		t.Error("Tick ran outside PLAYING")
	}
}

func TestStartResetsRound(t *testing.T) {
	g, rec := newTestGame(t)
	startQuiet(t, g)

	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.Phase != "PLAYING" || st.GameOver {
		t.Errorf("State() = %+v", st)
	}
	if !g.Frames().Running() {
		t.Error("frames not running after Start")
	}
	if rec.count(audio.CueStart) != 1 {
		t.Errorf("start cues = %d, want 1", rec.count(audio.CueStart))
	}
	snap := g.Snapshot(testNow)
	if snap.Player.X != 350 || snap.Player.Target != 350 {
		t.Errorf("player = %+v, want centered at 350", snap.Player)
	}
}

func TestStartFromPlayingIsIllegal(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(t, g)

	err := g.Start()
	if !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Start() error = %v, want ErrIllegalTransition", err)
	}
}

func TestResetIdempotence(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(t, g)
	fresh := g.Snapshot(testNow)

	// Dirty the round and end it.
	g.ledger.ApplyScoreDelta(120)
	g.player.SetTarget(10)
	g.items = append(g.items, Item{ID: 99, X: 100, Y: 455, Kind: KindRock, Speed: 5})
	g.ledger = NewLedger(1)
	tickN(g, 1)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, want GAME_OVER", g.Phase())
	}
	req, ok := g.BeginFlavor()
	if !ok {
		t.Fatal("BeginFlavor() = false")
	}
	g.CompleteFlavor(req, flavor.Text{Message: "well done", Reward: "bread"})

	startQuiet(t, g)
	again := g.Snapshot(testNow)

	if !reflect.DeepEqual(fresh, again) {
		t.Errorf("restart state differs:\nfresh = %+v\nagain = %+v", fresh, again)
	}
	if len(again.Items) != 0 || len(again.Particles) != 0 || again.Text != (flavor.Text{}) {
		t.Errorf("restart left state behind: %+v", again)
	}
}

func TestCroissantScenario(t *testing.T) {
	g, rec := newTestGame(t)
	startQuiet(t, g)
	g.player.SetTarget(100)
	g.items = []Item{{ID: 1, X: 100, Y: -200, Kind: KindCroissant, Speed: 5}}

	tickN(g, 131)
	if len(g.items) != 1 || g.items[0].Y != 455 {
		t.Fatalf("after 131 ticks items = %+v, want one at y=455", g.items)
	}

	tickN(g, 1)
	if len(g.items) != 0 {
		t.Fatalf("item not removed: %+v", g.items)
	}
	if g.State().Score != 10 {
		t.Errorf("Score = %d, want 10", g.State().Score)
	}
	if len(g.particles) != 8 {
		t.Fatalf("particles = %d, want 8", len(g.particles))
	}
	for _, p := range g.particles {
		if math.Abs(p.Pos.X-100) > 5 || math.Abs(p.Pos.Y-460) > 5 {
			t.Errorf("particle at %+v, want near (100, 460)", p.Pos)
		}
		if math.Abs(p.Life-0.95) > 1e-9 {
			t.Errorf("particle life = %v, want 0.95 after one aging pass", p.Life)
		}
		if p.Color != core.ColorGold {
			t.Errorf("particle color = %v, want croissant gold", p.Color)
		}
	}
	if rec.count(audio.CueCatch) != 1 {
		t.Errorf("catch cues = %d, want 1", rec.count(audio.CueCatch))
	}
	if !g.Snapshot(testNow).Player.Caught {
		t.Error("caught flag not set right after a catch")
	}
	if g.Snapshot(testNow.Add(200 * time.Millisecond)).Player.Caught {
		t.Error("caught flag still set after the flash window")
	}
}

func TestLivesTermination(t *testing.T) {
	g, rec := newTestGame(t)
	startQuiet(t, g)
	frame, _ := g.Frames().Current()

	g.player.SetTarget(100)
	for i := 0; i < 4; i++ {
		g.items = append(g.items, Item{ID: uint64(i + 1), X: 100, Y: 455, Kind: KindRock, Speed: 5})
	}

	res := g.Tick(testNow, core.NewInputFrame())

	if g.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, want GAME_OVER", g.Phase())
	}
	if !res.State.GameOver || res.State.Lives != 0 {
		t.Errorf("State = %+v, want game over with 0 lives", res.State)
	}
	if g.stats.Rocks != 3 {
		t.Errorf("rocks processed = %d, want 3", g.stats.Rocks)
	}
	if len(g.items) != 1 || g.items[0].ID != 4 || g.items[0].Y != 455 {
		t.Errorf("fourth rock should be untouched, items = %+v", g.items)
	}
	if g.Frames().Valid(frame) {
		t.Error("frame still valid after the terminal transition")
	}
	if rec.count(audio.CueGameOver) != 1 {
		t.Errorf("game over cues = %d, want 1", rec.count(audio.CueGameOver))
	}

	// No further ticks run.
	before := g.Snapshot(testNow)
	tickN(g, 5)
	if !reflect.DeepEqual(before, g.Snapshot(testNow)) {
		t.Error("state changed after GAME_OVER")
	}
}

func TestRockAtLastLife(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(t, g)
	g.ledger = NewLedger(1)
	g.player.SetTarget(100)
	g.items = []Item{{ID: 1, X: 120, Y: 458, Kind: KindRock, Speed: 4}}

	tickN(g, 1)

	if g.State().Lives != 0 {
		t.Errorf("Lives = %d, want 0", g.State().Lives)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, want GAME_OVER", g.Phase())
	}
	if g.Frames().Running() {
		t.Error("frame scheduler still running")
	}

	res, ok := g.Result()
	if !ok {
		t.Fatal("Result() ok = false")
	}
	if res.Round != 1 || res.Stats.Rocks != 1 || res.Stats.Ticks != 1 {
		t.Errorf("Result() = %+v", res)
	}
}

func TestFirstTickSpawns(t *testing.T) {
	g, _ := newTestGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	tickN(g, 1)
	if len(g.items) != 1 {
		t.Fatalf("items after first tick = %d, want 1", len(g.items))
	}
	it := g.items[0]
	if it.Y <= -200 || it.Y > -200+5 {
		t.Errorf("item y = %v, want one step below the spawn offset", it.Y)
	}

	// Frozen clock: no second spawn.
	tickN(g, 10)
	if len(g.items) != 1 {
		t.Errorf("items = %d, want 1 with a frozen clock", len(g.items))
	}
}

func TestPointerInputSetsTarget(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(t, g)

	in := core.NewInputFrame()
	in.SetPointer(g.ClampTarget(5000))
	g.Tick(testNow, in)

	if g.player.Target != 700 {
		t.Errorf("Target = %v, want 700", g.player.Target)
	}
	if !g.player.MovingRight {
		t.Error("MovingRight = false after moving toward a right target")
	}

	// No pointer: target unchanged, player keeps drifting.
	x := g.player.X
	tickN(g, 1)
	if g.player.Target != 700 || g.player.X <= x {
		t.Errorf("player = %+v, want drift toward 700", g.player)
	}
}

func TestClampTarget(t *testing.T) {
	g, _ := newTestGame(t)

	tests := []struct {
		in, want float64
	}{
		{-50, 0},
		{0, 0},
		{350, 350},
		{700, 700},
		{799, 700},
	}
	for _, tt := range tests {
		if got := g.ClampTarget(tt.in); got != tt.want {
			t.Errorf("ClampTarget(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFlavorRoundToken(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(t, g)
	g.ledger = Ledger{score: 40, lives: 1}
	g.player.SetTarget(100)
	g.items = []Item{{ID: 1, X: 100, Y: 458, Kind: KindRock, Speed: 5}}
	tickN(g, 1)

	if g.CompleteFlavor(FlavorRequest{Round: 1}, flavor.Text{}) {
		t.Error("CompleteFlavor() outside LOADING_AI = true")
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("CompleteFlavor outside LOADING_AI changed phase to %v", g.Phase())
	}

	req, ok := g.BeginFlavor()
	if !ok {
		t.Fatal("BeginFlavor() = false")
	}
	if req.Round != 1 || req.Score != 40 {
		t.Errorf("request = %+v", req)
	}
	if g.Phase() != PhaseLoadingAI {
		t.Errorf("Phase() = %v, want LOADING_AI", g.Phase())
	}
	if !g.State().GameOver {
		t.Error("LOADING_AI should report GameOver")
	}
	if _, ok := g.BeginFlavor(); ok {
		t.Error("second BeginFlavor() = true")
	}
	if err := g.Start(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Start() from LOADING_AI error = %v", err)
	}

	if !g.CompleteFlavor(req, flavor.Text{Message: "hi"}) {
		t.Fatal("CompleteFlavor() = false")
	}
	if g.Phase() != PhaseGameOver || g.Snapshot(testNow).Text.Message != "hi" {
		t.Errorf("after completion phase=%v text=%+v", g.Phase(), g.Snapshot(testNow).Text)
	}
	if _, ok := g.BeginFlavor(); ok {
		t.Error("BeginFlavor() after completion = true")
	}

	// A late result for round 1 must not touch round 2.
	startQuiet(t, g)
	if g.CompleteFlavor(req, flavor.Text{Message: "stale"}) {
		t.Error("stale CompleteFlavor() = true")
	}
	if g.Snapshot(testNow).Text.Message != "" {
		t.Error("stale text leaked into the new round")
	}
}

func TestStaleFrameAfterRestart(t *testing.T) {
	g, _ := newTestGame(t)
	startQuiet(t, g)
	first, _ := g.Frames().Current()

	g.Reset(g.runtime)
	if g.Frames().Valid(first) {
		t.Error("frame valid after Reset")
	}
	startQuiet(t, g)
	second, _ := g.Frames().Current()
	if first == second || g.Frames().Valid(first) || !g.Frames().Valid(second) {
		t.Errorf("frames first=%d second=%d", first, second)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		tick := 0
		clock := func() time.Time { return testNow.Add(time.Duration(tick) * 16 * time.Millisecond) }
		g := New(WithConfig(config.DefaultBakeryConfig()), WithClock(clock))
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
		if err := g.Start(); err != nil {
			t.Fatal(err)
		}
		for ; tick < 900; tick++ {
			in := core.NewInputFrame()
			if tick%30 == 0 {
				in.SetPointer(g.ClampTarget(float64(tick % 800)))
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot(clock())
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs diverged:\na = %+v\nb = %+v", a, b)
	}
}
