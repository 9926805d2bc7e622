// bakery is Eggie's Bakery, a catching game for the terminal.
//
// Usage:
//
//	bakery                   - Play (same as "bakery play")
//	bakery play              - Play a session
//	bakery config            - Print the effective configuration as YAML
//	bakery list              - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log-file <path>    - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/bakery-catch/internal/games/bakery"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bakery",
	Short: "Eggie's Bakery - catch falling bread in your terminal",
	Long: `Eggie's Bakery is a catching game. Steer the egg with the mouse or the
arrow keys, catch croissants and baguettes, avoid burnt toast, and never
catch a rock: three rocks and the round is over.

Available commands:
  play     - Play a session (default)
  config   - Print the effective configuration
  list     - Show registered games

Examples:
  bakery
  bakery play --difficulty hard
  bakery play --mute --log-file bakery.log
  bakery config --config ./my-bakery.yaml`,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
