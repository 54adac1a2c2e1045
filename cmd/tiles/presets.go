package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows each difficulty preset with the speed curve it produces from the loaded configuration.`,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	base, err := config.Load(flagConfig)
	exitOnError("loading config", err)

	fmt.Println("Difficulty presets:")
	fmt.Println()

	fmt.Printf("  %-7s  %6s  %6s  %8s  %s\n", "Name", "Start", "Step", "At 100", "Description")
	fmt.Printf("  %-7s  %6s  %6s  %8s  %s\n", "----", "-----", "----", "------", "-----------")

	for _, p := range config.Presets() {
		cfg := base
		config.ApplyPreset(&cfg, p)
		d := cfg.Difficulty
		fmt.Printf("  %-7s  %6.1f  %6.1f  %8.1f  %s\n", p, d.BaseSpeed, d.SpeedStep, d.Speed(100), p.Describe())
	}

	fmt.Println()
	fmt.Printf("Speed rises every %d points. Run 'tiles play --difficulty <name>' to preselect one.\n",
		base.Difficulty.ScorePerStep)
}
