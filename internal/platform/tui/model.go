package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bakery-catch/internal/config"
	"github.com/vovakirdan/bakery-catch/internal/core"
	"github.com/vovakirdan/bakery-catch/internal/flavor"
	"github.com/vovakirdan/bakery-catch/internal/games/bakery"
	"github.com/vovakirdan/bakery-catch/internal/registry"
	"github.com/vovakirdan/bakery-catch/internal/storage"
)

// footerHeight is the number of rows below the play field.
const footerHeight = 1

// catcher is implemented by games steered by a horizontal target.
type catcher interface {
	Config() config.BakeryConfig
	Target() float64
	ClampTarget(x float64) float64
}

// narrator is implemented by games that show generated text after a round.
type narrator interface {
	BeginFlavor() (bakery.FlavorRequest, bool)
	CompleteFlavor(req bakery.FlavorRequest, text flavor.Text) bool
	Result() (bakery.RoundResult, bool)
}

// Muter toggles audio cues.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// flavorMsg carries generated text back to the game.
type flavorMsg struct {
	req  bakery.FlavorRequest
	text flavor.Text
}

// Options holds the collaborators of a Model. Nil fields fall back to
// silent or in-memory defaults.
type Options struct {
	Store  *storage.Store
	Flavor *flavor.Service
	Sound  Muter
	Logger *log.Logger
	Plain  bool // Draw the board without colors
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	flavor     *flavor.Service
	sound      Muter
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	history    historyView
	best       int
	plain      bool
	recorded   bool // Whether the current round has been saved to the ledger
	showHist   bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Flavor == nil {
		opts.Flavor = flavor.NewService(nil)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerHeight)),
		store:      opts.Store,
		flavor:     opts.Flavor,
		sound:      opts.Sound,
		logger:     opts.Logger,
		config:     cfg,
		plain:      opts.Plain,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		history:    newHistoryView(opts.Store, game.ID(), cfg.ScreenW, cfg.ScreenH),
	}
	m.game.Reset(m.playConfig())
	m.gameState = m.game.State()
	return m
}

// playConfig is the runtime config with the footer row removed.
func (m Model) playConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(1, cfg.ScreenH-footerHeight)
	return cfg
}

// Init initializes the model. Ticks start only when a round starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case flavorMsg:
		return m.handleFlavor(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionMute:
		if m.sound != nil {
			muted := m.sound.ToggleMute()
			m.logger.Debug("audio toggled", "muted", muted)
		}
		return m, nil

	case core.ActionHistory:
		if m.gameState.Phase == bakery.PhasePlaying.String() {
			return m, nil
		}
		m.showHist = !m.showHist
		if m.showHist {
			if err := m.history.reload(); err != nil {
				m.logger.Error("cannot load session history", "error", err)
			}
		}
		return m, nil
	}

	if m.showHist {
		var cmd tea.Cmd
		m.history, cmd = m.history.update(msg)
		return m, cmd
	}

	switch action {
	case core.ActionConfirm:
		if m.gameState.Phase == bakery.PhaseMenu.String() {
			return m.startRound()
		}
	case core.ActionRestart:
		if m.gameState.Phase == bakery.PhaseGameOver.String() {
			return m.startRound()
		}
	case core.ActionLeft, core.ActionRight:
		m.nudge(action)
	}

	return m, nil
}

// nudge moves the target one key step, clamped at the input boundary.
func (m *Model) nudge(action core.Action) {
	c, ok := m.game.(catcher)
	if !ok {
		return
	}
	base := c.Target()
	if x, ok := m.inputFrame.Pointer(); ok {
		base = x
	}
	step := c.Config().Player.KeyStep
	if action == core.ActionLeft {
		step = -step
	}
	m.inputFrame.Set(action)
	m.inputFrame.SetPointer(c.ClampTarget(base + step))
}

// handleMouse maps the pointer column to a world-space target. The egg is
// centered under the pointer and the result is clamped before it is stored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	c, ok := m.game.(catcher)
	if !ok || m.screen.Width() == 0 {
		return m, nil
	}
	cfg := c.Config()
	x := (float64(msg.X)+0.5)/float64(m.screen.Width())*cfg.World.Width - cfg.Player.Width/2
	m.inputFrame.SetPointer(c.ClampTarget(x))
	return m, nil
}

// handleResize processes window resize events. The play field scales to the
// terminal so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	m.history.resize(msg.Width, msg.Height)
	return m, nil
}

// startRound starts a round and schedules its first tick.
func (m Model) startRound() (tea.Model, tea.Cmd) {
	if err := m.game.Start(); err != nil {
		m.logger.Debug("start rejected", "error", err)
		return m, nil
	}
	m.recorded = false
	m.inputFrame.Clear()
	m.gameState = m.game.State()

	frame, running := m.game.Frames().Current()
	if !running {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, frame)
}

// handleTick runs one simulation tick if the tick's frame is still current.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	frames := m.game.Frames()
	if !frames.Valid(msg.Frame) {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if frames.Valid(msg.Frame) {
		return m, tickCmd(m.config.TickRate, msg.Frame)
	}
	cmd := m.finishRound()
	return m, cmd
}

// finishRound records the round and requests flavor text once per round.
func (m *Model) finishRound() tea.Cmd {
	n, ok := m.game.(narrator)
	if !ok {
		return nil
	}

	if res, ok := n.Result(); ok && !m.recorded {
		m.record(res)
		m.recorded = true
	}

	req, ok := n.BeginFlavor()
	if !ok {
		return nil
	}
	m.gameState = m.game.State()

	svc := m.flavor
	return func() tea.Msg {
		text := svc.Generate(context.Background(), req.Score)
		return flavorMsg{req: req, text: text}
	}
}

func (m *Model) record(res bakery.RoundResult) {
	m.logger.Info("round finished",
		"round", res.Round,
		"score", res.Score,
		"caught", res.Stats.Caught,
		"burnt", res.Stats.Burnt,
		"dropped", res.Stats.Dropped,
		"ticks", res.Stats.Ticks,
	)

	if m.store == nil {
		m.best = max(m.best, res.Score)
		return
	}
	if _, err := m.store.SaveRound(storage.Round{
		GameID:    m.game.ID(),
		Number:    res.Round,
		Score:     res.Score,
		Caught:    res.Stats.Caught,
		Burnt:     res.Stats.Burnt,
		Rocks:     res.Stats.Rocks,
		Dropped:   res.Stats.Dropped,
		Ticks:     res.Stats.Ticks,
		StartedAt: res.StartedAt,
		EndedAt:   res.EndedAt,
	}); err != nil {
		m.logger.Error("cannot record round", "error", err)
	}
	best, err := m.store.Best(m.game.ID())
	if err != nil {
		m.logger.Error("cannot read session best", "error", err)
		return
	}
	m.best = best
}

// handleFlavor hands generated text to the game. Results for an older round
// are ignored by the game itself.
func (m Model) handleFlavor(msg flavorMsg) (tea.Model, tea.Cmd) {
	if n, ok := m.game.(narrator); ok {
		if !n.CompleteFlavor(msg.req, msg.text) {
			m.logger.Debug("discarded stale flavor text", "round", msg.req.Round)
		}
	}
	m.gameState = m.game.State()
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHist {
		return m.history.view()
	}

	m.game.Render(m.screen)
	if m.plain {
		return m.screen.String() + "\n" + m.footer()
	}
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	status := fmt.Sprintf("best %d", m.best)
	if m.sound != nil && m.sound.Muted() {
		status += "  muted"
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	left := helpStyle.Render(m.help.View(m.keys))
	right := statusStyle.Render(status)
	gap := m.config.ScreenW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return right
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
