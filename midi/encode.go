// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/ik5/stemfx/chords"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Options controls how a note track is laid out in the file.
type Options struct {
	TempoBPM   float64
	Resolution uint16 // ticks per quarter note
	TrackName  string
	Channel    uint8
}

// DefaultOptions are 120 BPM, 480 ticks per quarter note, channel 1.
func DefaultOptions() Options {
	return Options{TempoBPM: 120, Resolution: 480, TrackName: "chords"}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TempoBPM == 0 {
		o.TempoBPM = d.TempoBPM
	}
	if o.Resolution == 0 {
		o.Resolution = d.Resolution
	}
	if o.TrackName == "" {
		o.TrackName = d.TrackName
	}

	return o
}

func (o Options) validate() error {
	if math.IsNaN(o.TempoBPM) || math.IsInf(o.TempoBPM, 0) || o.TempoBPM <= 0 {
		return fmt.Errorf("%w: tempo %g", ErrInvalidOptions, o.TempoBPM)
	}
	if o.Channel > 15 {
		return fmt.Errorf("%w: channel %d", ErrInvalidOptions, o.Channel)
	}

	return nil
}

type noteEvent struct {
	tick int64
	off  bool
	key  uint8
	vel  uint8
}

func checkNote(i int, n chords.NoteEvent) error {
	switch {
	case n.Pitch < chords.MinPitch || n.Pitch > chords.MaxPitch:
		return fmt.Errorf("%w: note %d: pitch %d", ErrInvalidNote, i, n.Pitch)
	case n.Velocity < 0 || n.Velocity > 127:
		return fmt.Errorf("%w: note %d: velocity %d", ErrInvalidNote, i, n.Velocity)
	case math.IsNaN(n.Start) || math.IsNaN(n.End) || n.Start < 0 || n.End < n.Start:
		return fmt.Errorf("%w: note %d: span %g..%g", ErrInvalidNote, i, n.Start, n.End)
	}

	return nil
}

// Encode writes track as a single-track Standard MIDI File: track name,
// tempo and program change at tick 0, then the notes. Times are rounded to
// the nearest tick and every note lasts at least one tick. Notes with
// velocity 0 are silent in MIDI and are not written.
func Encode(w io.Writer, track chords.NoteTrack, opts Options) error {
	o := opts.withDefaults()
	if err := o.validate(); err != nil {
		return err
	}
	if track.Instrument < 0 || track.Instrument > 127 {
		return fmt.Errorf("%w: program %d", ErrInvalidOptions, track.Instrument)
	}

	ticksPerSecond := float64(o.Resolution) * o.TempoBPM / 60
	toTick := func(sec float64) int64 {
		return int64(math.Round(sec * ticksPerSecond))
	}

	events := make([]noteEvent, 0, 2*len(track.Notes))
	for i, n := range track.Notes {
		if err := checkNote(i, n); err != nil {
			return err
		}
		if n.Velocity == 0 {
			continue
		}

		start, end := toTick(n.Start), toTick(n.End)
		end = max(end, start+1)
		events = append(events,
			noteEvent{tick: start, key: uint8(n.Pitch), vel: uint8(n.Velocity)},
			noteEvent{tick: end, off: true, key: uint8(n.Pitch)},
		)
	}

	// at equal ticks release before striking so repeated pitches retrigger
	slices.SortStableFunc(events, func(a, b noteEvent) int {
		if c := cmp.Compare(a.tick, b.tick); c != 0 {
			return c
		}
		switch {
		case a.off && !b.off:
			return -1
		case !a.off && b.off:
			return 1
		}
		return cmp.Compare(a.key, b.key)
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(o.TrackName))
	tr.Add(0, smf.MetaTempo(o.TempoBPM))
	tr.Add(0, gomidi.ProgramChange(o.Channel, uint8(track.Instrument)))

	var last int64
	for _, e := range events {
		delta := uint32(e.tick - last)
		last = e.tick
		if e.off {
			tr.Add(delta, gomidi.NoteOff(o.Channel, e.key))
		} else {
			tr.Add(delta, gomidi.NoteOn(o.Channel, e.key, e.vel))
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(o.Resolution)
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("adding track: %w", err)
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}

	return nil
}

// WriteFile encodes track into a new file at path.
func WriteFile(path string, track chords.NoteTrack, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, track, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
