package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bakery-catch/internal/audio"
	"github.com/vovakirdan/bakery-catch/internal/audio/device"
	"github.com/vovakirdan/bakery-catch/internal/config"
	"github.com/vovakirdan/bakery-catch/internal/core"
	"github.com/vovakirdan/bakery-catch/internal/flavor"
	"github.com/vovakirdan/bakery-catch/internal/games/bakery"
	"github.com/vovakirdan/bakery-catch/internal/platform/tui"
	"github.com/vovakirdan/bakery-catch/internal/registry"
	"github.com/vovakirdan/bakery-catch/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session of Eggie's Bakery.

Controls:
  Mouse        - Move the egg
  Left/A       - Nudge left
  Right/D      - Nudge right
  Enter/Space  - Start
  R            - Play again (after game over)
  M            - Mute / unmute
  H            - Session history
  Q/Ctrl+C     - Quit

Items:
  Croissant +10, Baguette +15, Burnt toast -10, Rock costs a life.
  Letting good bread fall costs 2 points.

Difficulty options:
  easy   - Slower spawns and lighter gravity
  normal - Default settings
  hard   - Faster spawns and heavier gravity

End-of-round messages come from the Gemini API when GEMINI_API_KEY
(or API_KEY) is set; otherwise built-in messages are used.

Examples:
  bakery play
  bakery play --difficulty easy
  bakery play --seed 42 --config ./my-bakery.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := requireGame(bakery.GameID); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	bakery.SetConfigPath(flagConfig)
	bakery.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(bakery.GameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	sound := device.NewSoundManager(flagMute)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silently", "error", err)
	}
	defer sound.Cleanup()
	if g, ok := game.(interface{ SetCues(audio.Player) }); ok {
		g.SetCues(sound)
	}

	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("session history unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	client := flavor.NewClient(flavor.ClientConfig{
		Endpoint: cfg.Flavor.Endpoint,
		Model:    cfg.Flavor.Model,
		APIKey:   apiKey(),
	})
	svc := flavor.NewService(client,
		flavor.WithTimeout(cfg.Flavor.Timeout()),
		flavor.WithRewardMinScore(cfg.Flavor.RewardMinScore),
		flavor.WithLogger(logger.WithPrefix("flavor")),
	)

	if err := tui.Run(game, tui.Options{
		Store:  store,
		Flavor: svc,
		Sound:  sound,
		Logger: logger,
		Plain:  os.Getenv("NO_COLOR") != "",
	}, runtime); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// requireGame fails early when the game was not compiled in.
func requireGame(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown game %q; run 'bakery list' to see available games", id)
	}
	return nil
}

// loadConfig resolves the effective configuration, including the preset.
func loadConfig() (config.BakeryConfig, config.Source, error) {
	cfg, source, err := config.LoadBakery(flagConfig)
	if err != nil {
		return config.BakeryConfig{}, "", err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.BakeryConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, source, nil
}

// apiKey reads the text-generation key from the environment.
func apiKey() string {
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		return k
	}
	return os.Getenv("API_KEY")
}
