// SPDX-License-Identifier: EPL-2.0

package stemfx

import (
	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/chords"
	"github.com/ik5/stemfx/effects"
)

// ApplyEffectsPipeline validates chain against buf and applies its steps in
// order. buf is not modified. An empty chain returns an equal copy.
// An invalid buf fails with the audio package's validation errors; a
// rejected or failing step fails with an *effects.StepError wrapping
// effects.ErrConfiguration or effects.ErrNumericDegeneracy.
func ApplyEffectsPipeline(buf *audio.Buffer, chain effects.Chain) (*audio.Buffer, error) {
	return effects.Apply(buf, chain)
}

// SynthesizeNoteTrack converts a chord timeline into notes using the default
// chord table. It never fails; intervals whose label has no voicing are
// skipped.
func SynthesizeNoteTrack(tl chords.Timeline, instrument, velocity int) chords.NoteTrack {
	return chords.DefaultTable().Synthesize(tl, instrument, velocity)
}
