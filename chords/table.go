// SPDX-License-Identifier: EPL-2.0

package chords

import (
	"fmt"
	"maps"
	"slices"
)

// NoChord is the label chord recognisers emit for unharmonised segments.
const NoChord = "N"

// Table maps a chord label such as "C:maj" to the pitches voiced for it.
type Table map[string][]PitchName

// DefaultTable returns the built-in voicings: major and minor triads on the
// natural roots C through B, rooted in octave 4.
func DefaultTable() Table {
	return Table{
		"C:maj": {"C4", "E4", "G4"},
		"C:min": {"C4", "E-4", "G4"},
		"D:maj": {"D4", "F#4", "A4"},
		"D:min": {"D4", "F4", "A4"},
		"E:maj": {"E4", "G#4", "B4"},
		"E:min": {"E4", "G4", "B4"},
		"F:maj": {"F4", "A4", "C5"},
		"F:min": {"F4", "A-4", "C5"},
		"G:maj": {"G4", "B4", "D5"},
		"G:min": {"G4", "B-4", "D5"},
		"A:maj": {"A4", "C#5", "E5"},
		"A:min": {"A4", "C5", "E5"},
		"B:maj": {"B4", "D#5", "F#5"},
		"B:min": {"B4", "D5", "F#5"},
	}
}

// flatRoots are the enharmonic flat spellings of the sharp roots.
var flatRoots = map[string]string{
	"C#": "Db", "D#": "Eb", "F#": "Gb", "G#": "Ab", "A#": "Bb",
}

// TriadTable generates root-position major and minor triads for all twelve
// roots with the root in the given octave. Black-key roots are listed under
// both their sharp and flat labels.
func TriadTable(octave int) (Table, error) {
	t := Table{}
	for root, name := range sharpNames {
		base := (octave+1)*12 + root
		for quality, third := range map[string]int{"maj": 4, "min": 3} {
			triad := make([]PitchName, 0, 3)
			for _, step := range []int{0, third, 7} {
				p, err := PitchFromMIDI(base + step)
				if err != nil {
					return nil, fmt.Errorf("octave %d: %w", octave, err)
				}
				triad = append(triad, p)
			}

			t[name+":"+quality] = triad
			if flat, ok := flatRoots[name]; ok {
				t[flat+":"+quality] = slices.Clone(triad)
			}
		}
	}

	return t, nil
}

// Map returns the pitches for label. Unknown labels and NoChord map to an
// empty set. The result is a copy.
func (t Table) Map(label string) []PitchName {
	if label == NoChord {
		return nil
	}

	return slices.Clone(t[label])
}

// Merge returns a new table holding t's entries overridden by other's.
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t)+len(other))
	for label, pitches := range t {
		out[label] = slices.Clone(pitches)
	}
	for label, pitches := range other {
		out[label] = slices.Clone(pitches)
	}

	return out
}

// Labels returns the table's labels in sorted order.
func (t Table) Labels() []string {
	return slices.Sorted(maps.Keys(t))
}

// Validate resolves every pitch in the table.
func (t Table) Validate() error {
	for _, label := range t.Labels() {
		for _, p := range t[label] {
			if _, err := p.MIDI(); err != nil {
				return fmt.Errorf("chord %q: %w", label, err)
			}
		}
	}

	return nil
}
