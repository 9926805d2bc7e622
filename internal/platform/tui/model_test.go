package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bakery-catch/internal/config"
	"github.com/vovakirdan/bakery-catch/internal/core"
	"github.com/vovakirdan/bakery-catch/internal/flavor"
	"github.com/vovakirdan/bakery-catch/internal/games/bakery"
	"github.com/vovakirdan/bakery-catch/internal/storage"
)

// fakeGame ends its round after endAfter ticks.
type fakeGame struct {
	frames   core.FrameScheduler
	phase    bakery.Phase
	round    int
	steps    int
	endAfter int
	target   float64
	begun    int
	text     flavor.Text
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.frames.Stop()
	g.phase = bakery.PhaseMenu
	g.target = 350
}

func (g *fakeGame) Start() error {
	if g.phase != bakery.PhaseMenu && g.phase != bakery.PhaseGameOver {
		return bakery.ErrIllegalTransition
	}
	g.phase = bakery.PhasePlaying
	g.round++
	g.steps = 0
	g.frames.Start()
	return nil
}

func (g *fakeGame) Frames() *core.FrameScheduler { return &g.frames }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if x, ok := in.Pointer(); ok {
		g.target = x
	}
	g.steps++
	if g.steps >= g.endAfter {
		g.frames.Stop()
		g.phase = bakery.PhaseGameOver
	}
	return core.StepResult{State: g.State(), Ran: true}
}

func (g *fakeGame) Render(*core.Screen) {}

func (g *fakeGame) State() core.GameState {
	return core.GameState{
		Score:    42,
		Phase:    g.phase.String(),
		GameOver: g.phase == bakery.PhaseGameOver || g.phase == bakery.PhaseLoadingAI,
	}
}

func (g *fakeGame) Config() config.BakeryConfig { return config.DefaultBakeryConfig() }
func (g *fakeGame) Target() float64             { return g.target }
func (g *fakeGame) ClampTarget(x float64) float64 {
	return core.ClampF(x, 0, 700)
}

func (g *fakeGame) BeginFlavor() (bakery.FlavorRequest, bool) {
	if g.phase != bakery.PhaseGameOver || g.begun == g.round {
		return bakery.FlavorRequest{}, false
	}
	g.phase = bakery.PhaseLoadingAI
	g.begun = g.round
	return bakery.FlavorRequest{Round: g.round, Score: 42}, true
}

func (g *fakeGame) CompleteFlavor(req bakery.FlavorRequest, text flavor.Text) bool {
	if req.Round != g.round || g.phase != bakery.PhaseLoadingAI {
		return false
	}
	g.phase = bakery.PhaseGameOver
	g.text = text
	return true
}

func (g *fakeGame) Result() (bakery.RoundResult, bool) {
	if g.phase == bakery.PhaseMenu || g.phase == bakery.PhasePlaying {
		return bakery.RoundResult{}, false
	}
	return bakery.RoundResult{Round: g.round, Score: 42}, true
}

type fakeMuter struct{ muted bool }

func (f *fakeMuter) ToggleMute() bool { f.muted = !f.muted; return f.muted }
func (f *fakeMuter) Muted() bool      { return f.muted }

func newTestModel(t *testing.T, endAfter int) (Model, *fakeGame, *storage.Store) {
	t.Helper()
	store, err := storage.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{endAfter: endAfter}
	m := NewModel(g, Options{Store: store, Sound: &fakeMuter{}}, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1})
	return m, g, store
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTickBeforeStartIsDropped(t *testing.T) {
	m, g, _ := newTestModel(t, 100)

	_, cmd := send(t, m, TickMsg{Frame: 1})
	if cmd != nil {
		t.Error("stale tick rescheduled")
	}
	if g.steps != 0 {
		t.Errorf("steps = %d, want 0", g.steps)
	}
}

func TestStartSchedulesTicks(t *testing.T) {
	m, g, _ := newTestModel(t, 100)

	m, cmd := send(t, m, enterKey)
	if cmd == nil {
		t.Fatal("Start did not schedule a tick")
	}
	frame, running := g.frames.Current()
	if !running {
		t.Fatal("frames not running")
	}

	m, cmd = send(t, m, TickMsg{Frame: frame})
	if g.steps != 1 || cmd == nil {
		t.Errorf("steps = %d, rescheduled = %v", g.steps, cmd != nil)
	}

	_, cmd = send(t, m, TickMsg{Frame: frame - 1})
	if g.steps != 1 || cmd != nil {
		t.Errorf("stale frame ran: steps = %d", g.steps)
	}
}

func TestRoundEndRequestsFlavor(t *testing.T) {
	m, g, store := newTestModel(t, 1)

	m, _ = send(t, m, enterKey)
	frame, _ := g.frames.Current()

	m, cmd := send(t, m, TickMsg{Frame: frame})
	if cmd == nil {
		t.Fatal("no flavor command after the round ended")
	}
	if g.phase != bakery.PhaseLoadingAI {
		t.Fatalf("phase = %v, want LOADING_AI", g.phase)
	}
	if m.best != 42 {
		t.Errorf("best = %d, want 42", m.best)
	}

	rounds, err := store.Rounds("fake", 10)
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 1 || rounds[0].Score != 42 {
		t.Errorf("rounds = %+v", rounds)
	}

	msg := cmd()
	m, _ = send(t, m, msg)
	if g.phase != bakery.PhaseGameOver {
		t.Errorf("phase = %v, want GAME_OVER", g.phase)
	}
	if g.text.Message != flavor.FallbackMessage(42) {
		t.Errorf("message = %q, want fallback", g.text.Message)
	}

	// Restart from game over.
	_, cmd = send(t, m, runeKey('r'))
	if cmd == nil || g.phase != bakery.PhasePlaying || g.round != 2 {
		t.Errorf("restart failed: phase = %v round = %d", g.phase, g.round)
	}
}

func TestKeyNudgeClamped(t *testing.T) {
	m, g, _ := newTestModel(t, 100)
	m, _ = send(t, m, enterKey)
	frame, _ := g.frames.Current()

	m, _ = send(t, m, leftKey)
	m, _ = send(t, m, TickMsg{Frame: frame})
	if g.target != 310 {
		t.Errorf("target = %v, want 310", g.target)
	}

	for i := 0; i < 20; i++ {
		m, _ = send(t, m, leftKey)
	}
	send(t, m, TickMsg{Frame: frame})
	if g.target != 0 {
		t.Errorf("target = %v, want clamped to 0", g.target)
	}
}

func TestMouseMapsToWorld(t *testing.T) {
	tests := []struct {
		col  int
		want float64
	}{
		{40, 355},
		{0, 0},
		{79, 700},
	}

	for _, tt := range tests {
		m, g, _ := newTestModel(t, 100)
		m, _ = send(t, m, enterKey)
		frame, _ := g.frames.Current()

		m, _ = send(t, m, tea.MouseMsg{X: tt.col, Y: 5, Action: tea.MouseActionMotion})
		send(t, m, TickMsg{Frame: frame})
		if g.target != tt.want {
			t.Errorf("column %d: target = %v, want %v", tt.col, g.target, tt.want)
		}
	}
}

func TestMuteAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t, 100)
	muter := m.sound.(*fakeMuter)

	m, _ = send(t, m, runeKey('m'))
	if !muter.muted {
		t.Error("m did not mute")
	}

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestPlainViewSkipsStyling(t *testing.T) {
	m, _, _ := newTestModel(t, 0)
	m.plain = true
	m.screen.DrawTextColored(0, 1, "crumbs", core.ColorPeach)

	view := m.View()
	if !strings.HasPrefix(view, m.screen.String()+"\n") {
		t.Errorf("plain view should start with the raw board, got %q", view[:40])
	}
}
