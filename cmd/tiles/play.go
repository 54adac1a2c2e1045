package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/audio"
	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. Pick a difficulty in the menu and press Enter.

Controls:
  D F J K / 1 2 3 4  - Tap the tile in lanes 1-4
  Mouse click        - Tap the clicked tile
  Up/Down            - Choose difficulty (menu)
  Enter/Space        - Start
  R                  - Restart (after game over)
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

Music starts on your first point and stops when a tile gets away.

Examples:
  tiles play
  tiles play --difficulty easy
  tiles play --mute --log-file tiles.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, preset, err := loadConfig()
	exitOnError("loading config", err)

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(nil)
	exitOnError("creating logger", err)
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	var jukebox *audio.Jukebox
	var speaker *audio.Speaker
	if cfg.Audio.Enabled && !flagMute {
		jukebox, speaker = newJukebox(cfg.Audio, rt.Seed, logger)
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Preset:  preset,
		Runtime: rt,
		Jukebox: jukebox,
		Logger:  logger,
	})

	if speaker != nil {
		speaker.Close()
	}
	if runErr != nil {
		closeLog()
		exitOnError("running game", runErr)
	}
}

// newJukebox builds the playlist and speaker output. A broken playlist
// disables music rather than the game.
func newJukebox(cfg config.AudioConfig, seed int64, logger *log.Logger) (*audio.Jukebox, *audio.Speaker) {
	tracks, err := audio.NewPlaylist(cfg, audio.SampleRate)
	if err != nil {
		logger.Warn("music disabled", "error", err)
		return nil, nil
	}
	speaker := audio.NewSpeaker(cfg.Volume)
	return audio.NewJukebox(speaker, tracks, seed, logger), speaker
}
