package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rest is the note name for silence.
const Rest = "-"

var semitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// NoteFrequency converts scientific pitch notation ("A4", "C#5", "Bb3") to a
// frequency in Hz. A rest returns 0.
func NoteFrequency(name string) (float64, error) {
	if name == Rest {
		return 0, nil
	}
	if len(name) < 2 {
		return 0, fmt.Errorf("invalid note %q", name)
	}

	semi, ok := semitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("invalid note %q", name)
	}

	rest := name[1:]
	switch rest[0] {
	case '#':
		semi++
		rest = rest[1:]
	case 'b':
		semi--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil || octave < 0 || octave > 8 {
		return 0, fmt.Errorf("invalid octave in note %q", name)
	}

	midi := (octave+1)*12 + semi
	return 440 * math.Pow(2, float64(midi-69)/12), nil
}

// ParseNotes converts a space separated note list to frequencies.
func ParseNotes(notes string) ([]float64, error) {
	fields := strings.Fields(notes)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty note list")
	}

	freqs := make([]float64, len(fields))
	for i, f := range fields {
		freq, err := NoteFrequency(f)
		if err != nil {
			return nil, err
		}
		freqs[i] = freq
	}
	return freqs, nil
}
