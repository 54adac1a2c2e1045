package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate used for all tracks.
const SampleRate = beep.SampleRate(44100)

// Output is where music is played. The speaker-backed implementation is
// returned by NewSpeaker; tests substitute their own.
type Output interface {
	// Open prepares the device. It may fail, for example when no audio
	// device is available, and may be retried later.
	Open() error
	// Play replaces whatever is playing with s.
	Play(s beep.Streamer)
	// Stop silences the output.
	Stop()
}

// Speaker plays through the system audio device.
type Speaker struct {
	volume float64
	mixer  *beep.Mixer
	ready  bool
}

// NewSpeaker creates a speaker output with a volume in [0, 1].
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Open initializes the speaker once and starts the mixer.
func (s *Speaker) Open() error {
	if s.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// Play replaces the current track.
func (s *Speaker) Play(st beep.Streamer) {
	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	s.mixer.Add(withVolume(st, s.volume))
	speaker.Unlock()
}

// Stop clears the mixer.
func (s *Speaker) Stop() {
	if !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	if !s.ready {
		return
	}
	s.Stop()
	speaker.Close()
	s.ready = false
}

// withVolume scales a stream linearly. Zero is silent since log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
