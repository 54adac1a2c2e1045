package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration tiles would run with, after the config file
search and the --difficulty preset, as YAML.

Config search order:
  1. --config <path>
  2. ~/.tiles/configs/tiles.yaml
  3. ./configs/tiles.yaml
  4. Built-in defaults

Examples:
  tiles config > ~/.tiles/configs/tiles.yaml
  tiles config --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig()
	exitOnError("loading config", err)

	data, err := config.Marshal(cfg)
	exitOnError("encoding config", err)

	fmt.Print(string(data))
}
