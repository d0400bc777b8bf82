// SPDX-License-Identifier: EPL-2.0

package chords

import (
	"cmp"
	"slices"
)

// DefaultVelocity is the note velocity used when none is configured.
const DefaultVelocity = 100

// Interval is one recognised chord segment, in seconds.
type Interval struct {
	Start float64
	End   float64
	Label string
}

// Timeline is a sequence of chord intervals. Intervals may overlap.
type Timeline []Interval

// NoteEvent is an abstract note; Start and End are in seconds.
type NoteEvent struct {
	Pitch    int
	Velocity int
	Start    float64
	End      float64
}

// NoteTrack is an unordered set of notes played by one General MIDI program.
type NoteTrack struct {
	Instrument int
	Notes      []NoteEvent
}

// Sorted returns the notes ordered by start time, then end time, then pitch.
func (t NoteTrack) Sorted() []NoteEvent {
	out := slices.Clone(t.Notes)
	slices.SortStableFunc(out, func(a, b NoteEvent) int {
		return cmp.Or(
			cmp.Compare(a.Start, b.Start),
			cmp.Compare(a.End, b.End),
			cmp.Compare(a.Pitch, b.Pitch),
		)
	})

	return out
}

// Duration is the latest note end, or zero for an empty track.
func (t NoteTrack) Duration() float64 {
	var end float64
	for _, n := range t.Notes {
		end = max(end, n.End)
	}

	return end
}

func clampMIDI(v int) int {
	return min(max(v, MinPitch), MaxPitch)
}

// Synthesize turns a chord timeline into notes: each interval whose label
// maps to pitches emits one note per pitch spanning the interval, at the
// given velocity. Unmapped intervals emit nothing. Overlapping intervals
// produce overlapping notes. Velocity and instrument are clamped to 0..127
// and pitch names that do not resolve are skipped, so Synthesize never fails.
func (t Table) Synthesize(tl Timeline, instrument, velocity int) NoteTrack {
	track := NoteTrack{Instrument: clampMIDI(instrument)}
	velocity = clampMIDI(velocity)

	for _, iv := range tl {
		for _, name := range t.Map(iv.Label) {
			pitch, err := name.MIDI()
			if err != nil {
				continue
			}
			track.Notes = append(track.Notes, NoteEvent{
				Pitch:    pitch,
				Velocity: velocity,
				Start:    iv.Start,
				End:      iv.End,
			})
		}
	}

	return track
}

// Synthesize uses DefaultTable.
func Synthesize(tl Timeline, instrument, velocity int) NoteTrack {
	return DefaultTable().Synthesize(tl, instrument, velocity)
}
