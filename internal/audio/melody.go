package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Envelope timings for each synthesized note.
const (
	noteAttack  = 8 * time.Millisecond
	noteRelease = 60 * time.Millisecond
)

// melody is one pass of a note sequence, one note per beat. Each note is a
// square-ish tone (fundamental plus odd harmonics) shaped by a short
// attack/release envelope. Wrap it in beep.Loop to repeat it.
type melody struct {
	rate    beep.SampleRate
	notes   []float64
	perNote int
	attack  int
	release int
	pos     int // Sample position within the sequence
	phase   float64
}

// newMelody builds a melody at the given tempo in beats per minute.
func newMelody(rate beep.SampleRate, notes []float64, tempo int) (*melody, error) {
	if tempo <= 0 {
		return nil, fmt.Errorf("tempo must be positive, got %d", tempo)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("melody has no notes")
	}
	beat := time.Minute / time.Duration(tempo)
	perNote := rate.N(beat)
	if perNote <= 0 {
		return nil, fmt.Errorf("tempo %d is too fast for %d Hz", tempo, rate)
	}
	return &melody{
		rate:    rate,
		notes:   notes,
		perNote: perNote,
		attack:  rate.N(noteAttack),
		release: rate.N(noteRelease),
	}, nil
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && m.pos < m.Len() {
		offset := m.pos % m.perNote
		freq := m.notes[m.pos/m.perNote]

		var val float64
		if freq > 0 {
			x := 2 * math.Pi * m.phase
			val = math.Sin(x) + math.Sin(3*x)/3 + math.Sin(5*x)/5
			val *= 0.25 * m.envelope(offset)
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}

		samples[n][0] = val
		samples[n][1] = val
		n++

		m.pos++
		if offset+1 == m.perNote {
			m.phase = 0
		}
	}
	return n, n > 0
}

func (m *melody) envelope(offset int) float64 {
	if m.attack > 0 && offset < m.attack {
		return float64(offset) / float64(m.attack)
	}
	if left := m.perNote - offset; m.release > 0 && left < m.release {
		return float64(left) / float64(m.release)
	}
	return 1
}

func (m *melody) Err() error { return nil }

// Len returns the length of the sequence in samples.
func (m *melody) Len() int {
	return m.perNote * len(m.notes)
}

// Position returns the current sample position.
func (m *melody) Position() int {
	return m.pos
}

// Seek moves to a sample position in [0, Len()].
func (m *melody) Seek(p int) error {
	if p < 0 || p > m.Len() {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, m.Len())
	}
	m.pos = p
	m.phase = 0
	return nil
}
