package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bakery-catch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML.

Search order:
  --config <path>
  ~/.bakery/configs/bakery.yaml
  ./configs/bakery.yaml
  built-in defaults

Save the output to one of these paths and edit it to tune the game.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
	if flagDifficulty != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "# difficulty: %s\n", flagDifficulty)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
