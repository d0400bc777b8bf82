// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/stemfx/chords"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func readSMF(r io.Reader) (s *smf.SMF, e error) {
	// smf can panic on truncated input
	defer func() {
		if p := recover(); p != nil {
			s, e = nil, fmt.Errorf("%w: %v", ErrParse, p)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return s, nil
}

type openNote struct {
	start float64
	vel   uint8
}

// Decode reads every track of a Standard MIDI File into one NoteTrack.
// Note-offs close the earliest open note of the same key; notes still open
// at the end of the file are dropped. The first program change sets the
// instrument. Notes are returned in start-time order.
func Decode(r io.Reader) (chords.NoteTrack, error) {
	var track chords.NoteTrack

	s, err := readSMF(r)
	if err != nil {
		return track, err
	}

	programSet := false
	for _, events := range s.Tracks {
		open := map[uint8][]openNote{}

		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			at := float64(s.TimeAt(absTicks)) / 1e6

			var channel, key, velocity, program uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				open[key] = append(open[key], openNote{start: at, vel: velocity})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				q := open[key]
				if len(q) == 0 {
					continue
				}
				open[key] = q[1:]
				track.Notes = append(track.Notes, chords.NoteEvent{
					Pitch:    int(key),
					Velocity: int(q[0].vel),
					Start:    q[0].start,
					End:      at,
				})
			case gomidi.Message(event.Message).GetProgramChange(&channel, &program):
				if !programSet {
					track.Instrument = int(program)
					programSet = true
				}
			}
		}
	}
	track.Notes = track.Sorted()

	return track, nil
}

// ReadFile decodes the MIDI file at path.
func ReadFile(path string) (chords.NoteTrack, error) {
	f, err := os.Open(path)
	if err != nil {
		return chords.NoteTrack{}, err
	}
	defer f.Close()

	return Decode(f)
}
