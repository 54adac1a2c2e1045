package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-tiles/internal/config"
)

// resampleQuality is passed to beep.Resample for WAV files recorded at a
// different rate.
const resampleQuality = 4

// Track is a playlist entry. Open returns a fresh, endlessly looping stream
// positioned at the start of the track.
type Track struct {
	Name string
	open func() (beep.Streamer, error)
}

// Open starts the track from the beginning.
func (t Track) Open() (beep.Streamer, error) {
	return t.open()
}

// NewPlaylist builds tracks from configuration. Synthesized tracks are
// validated up front; WAV files are decoded on first play.
func NewPlaylist(cfg config.AudioConfig, rate beep.SampleRate) ([]Track, error) {
	tracks := make([]Track, 0, len(cfg.Playlist))
	for _, tc := range cfg.Playlist {
		tr, err := newTrack(tc, rate)
		if err != nil {
			return nil, fmt.Errorf("track %q: %w", tc.Name, err)
		}
		tracks = append(tracks, tr)
	}
	return tracks, nil
}

func newTrack(tc config.TrackConfig, rate beep.SampleRate) (Track, error) {
	if tc.Path != "" {
		var buf *beep.Buffer
		return Track{
			Name: tc.Name,
			open: func() (beep.Streamer, error) {
				if buf == nil {
					b, err := decodeWAV(tc.Path, rate)
					if err != nil {
						return nil, err
					}
					buf = b
				}
				return beep.Loop(-1, buf.Streamer(0, buf.Len())), nil
			},
		}, nil
	}

	notes, err := ParseNotes(tc.Notes)
	if err != nil {
		return Track{}, err
	}
	if _, err := newMelody(rate, notes, tc.Tempo); err != nil {
		return Track{}, err
	}
	return Track{
		Name: tc.Name,
		open: func() (beep.Streamer, error) {
			m, err := newMelody(rate, notes, tc.Tempo)
			if err != nil {
				return nil, err
			}
			return beep.Loop(-1, m), nil
		},
	}, nil
}

// decodeWAV reads a whole WAV file into memory at the output sample rate.
func decodeWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  rate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(src)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%s contains no audio", path)
	}
	return buf, nil
}
