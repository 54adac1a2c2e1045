package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/clock"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/games/tiles"
)

var (
	flagSimDuration time.Duration
	flagSimMiss     float64
	flagSimRuns     int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with a bot player",
	Long: `Run the game on a virtual clock with a bot that taps each tile at a
random point of its fall and misses a fraction of them on purpose.
Useful for tuning difficulty settings.

Each run ends when a tile gets away or the duration elapses.

Examples:
  tiles sim
  tiles sim --miss 0 --duration 5m
  tiles sim --runs 10 --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", time.Minute, "Maximum game time per run")
	simCmd.Flags().Float64Var(&flagSimMiss, "miss", 0.01, "Fraction of tiles the bot ignores")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
}

func runSim(cmd *cobra.Command, args []string) {
	if flagSimMiss < 0 || flagSimMiss > 1 {
		exitOnError("parsing flags", fmt.Errorf("--miss must be in [0, 1], got %v", flagSimMiss))
	}

	cfg, _, err := loadConfig()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger(os.Stderr)
	exitOnError("creating logger", err)
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{TickRate: flagFPS}
	clk := clock.NewManual(rt.FrameInterval())
	loop := tiles.NewLoop(tiles.NewSession(cfg, seed), clk, logger)
	bot := tiles.NewBot(seed, flagSimMiss)

	fmt.Printf("  %-4s  %6s  %6s  %7s  %7s  %s\n", "Run", "Score", "Speed", "Spawned", "Frames", "Time")
	for run := 1; run <= flagSimRuns; run++ {
		if run == 1 {
			err = loop.Start()
		} else {
			err = loop.Restart()
		}
		exitOnError("starting run", err)

		start := clk.Now()
		for loop.Session().Running() && clk.Now()-start < flagSimDuration {
			clk.Frames(1)
			bot.Act(loop)
		}

		snap := loop.Session().Snapshot()
		outcome := "missed"
		if snap.Phase == tiles.PhasePlaying {
			outcome = "survived"
		}
		fmt.Printf("  %-4d  %6d  %6.1f  %7d  %7d  %s (%s)\n",
			run, snap.Score, snap.Speed, snap.Spawned, snap.Frame,
			(clk.Now() - start).Round(time.Millisecond), outcome)

		// A surviving run must end before it can be restarted.
		if snap.Phase == tiles.PhasePlaying {
			bot.MissChance = 1
			for loop.Session().Running() {
				clk.Frames(1)
				bot.Act(loop)
			}
			bot.MissChance = flagSimMiss
		}
	}
}
