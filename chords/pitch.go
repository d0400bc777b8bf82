// SPDX-License-Identifier: EPL-2.0

package chords

import (
	"fmt"
	"strconv"
)

// MIDI pitch range.
const (
	MinPitch = 0
	MaxPitch = 127
)

// semitones from C for each note letter
var letterSemitone = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName is a note letter, any number of accidentals and an octave, such
// as "C4", "F#4", "Bb3" or "E-4". Both 'b' and '-' mean flat; '#' means
// sharp. Octaves run from 0 to 9 and C4 is middle C (MIDI 60).
type PitchName string

// MIDI resolves p to its equal-temperament MIDI number, A4 = 69.
func (p PitchName) MIDI() (int, error) {
	s := string(p)
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitchName, s)
	}

	semitone, ok := letterSemitone[upper(s[0])]
	if !ok {
		return 0, fmt.Errorf("%w: %q: bad note letter", ErrInvalidPitchName, s)
	}

	i := 1
accidentals:
	for ; i < len(s); i++ {
		switch s[i] {
		case '#':
			semitone++
		case 'b', '-':
			semitone--
		default:
			break accidentals
		}
	}

	octave, err := strconv.Atoi(s[i:])
	if err != nil || i == len(s) || s[i] == '+' || octave < 0 || octave > 9 {
		return 0, fmt.Errorf("%w: %q: bad octave", ErrInvalidPitchName, s)
	}

	pitch := (octave+1)*12 + semitone
	if pitch < MinPitch || pitch > MaxPitch {
		return 0, fmt.Errorf("%w: %q resolves to %d", ErrInvalidPitchName, s, pitch)
	}

	return pitch, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}

// PitchFromMIDI spells a MIDI number with sharps, e.g. 61 -> "C#4".
func PitchFromMIDI(pitch int) (PitchName, error) {
	if pitch < MinPitch || pitch > MaxPitch {
		return "", fmt.Errorf("%w: MIDI %d out of range", ErrInvalidPitchName, pitch)
	}
	octave := pitch/12 - 1
	if octave < 0 {
		return "", fmt.Errorf("%w: MIDI %d is below octave 0", ErrInvalidPitchName, pitch)
	}

	return PitchName(sharpNames[pitch%12] + strconv.Itoa(octave)), nil
}
