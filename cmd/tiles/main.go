// tiles is a falling-tiles reflex game for the terminal.
//
// Usage:
//
//	tiles play               - Play the game
//	tiles sim                - Run a headless game with a bot player
//	tiles presets            - List difficulty presets
//	tiles config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/config"
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
	Use:   "tiles",
	Short: "Tiles - tap the falling tiles before they hit the bottom",
	Long: `Tiles is a reflex game for the terminal. Tiles fall through four
lanes; tap each one before it reaches the bottom. Every 8 points the tiles
fall faster, and a single miss ends the run.

Available commands:
  play     - Play the game
  sim      - Run a headless game with a bot player
  presets  - List difficulty presets
  config   - Print the effective configuration

Examples:
  tiles play
  tiles play --difficulty hard
  tiles sim --duration 2m --miss 0.02
  tiles config --config ./my-tiles.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the --difficulty preset.
func loadConfig() (config.TilesConfig, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.TilesConfig{}, "", err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TilesConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// exitOnError prints err and exits.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}
