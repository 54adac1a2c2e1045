// Package audio plays background music for the tiles game. Music starts on
// the first point of a run, stops and rewinds when the run ends, and, if the
// audio device refuses to start, waits for the next user interaction before
// trying again.
package audio

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Jukebox picks a random track from a playlist for each run.
// It is driven from the game loop and is not safe for concurrent use.
type Jukebox struct {
	out    Output
	tracks []Track
	rng    *rand.Rand
	logger *log.Logger

	current  int  // Index of the chosen track, -1 when none
	playing  bool // Output is playing the current track
	deferred bool // Start was refused; retry on next interaction
}

// NewJukebox creates a jukebox. A nil logger discards output.
func NewJukebox(out Output, tracks []Track, seed int64, logger *log.Logger) *Jukebox {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Jukebox{
		out:     out,
		tracks:  tracks,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger,
		current: -1,
	}
}

// SessionStarted forgets any deferred start from the previous run.
func (j *Jukebox) SessionStarted() {
	j.deferred = false
}

// TileScored starts the music on the first point of a run.
func (j *Jukebox) TileScored(_ int, first bool) {
	if !first || j.playing {
		return
	}
	j.current = j.rng.Intn(max(len(j.tracks), 1))
	j.start()
}

// SessionEnded stops the music. The next run starts its track from the
// beginning.
func (j *Jukebox) SessionEnded(int) {
	if j.playing {
		j.out.Stop()
		j.logger.Debug("music stopped", "track", j.Current())
	}
	j.playing = false
	j.deferred = false
	j.current = -1
}

// Interact retries a start that the audio device refused earlier.
// Call it on every user input.
func (j *Jukebox) Interact() {
	if j.deferred {
		j.start()
	}
}

func (j *Jukebox) start() {
	if len(j.tracks) == 0 {
		return
	}
	track := j.tracks[j.current]

	if err := j.out.Open(); err != nil {
		if !j.deferred {
			j.logger.Warn("audio unavailable, will retry on next input", "error", err)
		}
		j.deferred = true
		return
	}
	j.deferred = false

	stream, err := track.Open()
	if err != nil {
		j.logger.Error("failed to open track", "track", track.Name, "error", err)
		return
	}
	j.out.Play(stream)
	j.playing = true
	j.logger.Info("music started", "track", track.Name)
}

// Playing reports whether a track is playing.
func (j *Jukebox) Playing() bool {
	return j.playing
}

// Deferred reports whether a start is waiting for the next interaction.
func (j *Jukebox) Deferred() bool {
	return j.deferred
}

// Current returns the name of the chosen track, or "".
func (j *Jukebox) Current() string {
	if j.current < 0 || j.current >= len(j.tracks) {
		return ""
	}
	return j.tracks[j.current].Name
}
