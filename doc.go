// SPDX-License-Identifier: EPL-2.0

// Package stemfx masters separated instrument stems and turns chord label
// timelines into MIDI note tracks.
//
// The work is split across subpackages; this package holds the two entry
// points most callers need.
//
// # Effects
//
// ApplyEffectsPipeline runs an effects.Chain over a whole audio.Buffer. The
// chain is checked against the buffer's channel count and sample rate before
// any audio is touched, so a bad parameter never produces partial output:
//
//	buf, _ := formats.ReadFile("piano.wav")
//	out, err := stemfx.ApplyEffectsPipeline(buf, effects.DefaultMasteringChain())
//	if err != nil {
//	    var se *effects.StepError
//	    if errors.As(err, &se) {
//	        log.Printf("step %d (%s) rejected %s", se.Index, se.Kind, se.Param)
//	    }
//	}
//	_ = formats.WriteWAV("piano_final.wav", out, 16)
//
// The default mastering chain is
//
//	high_pass(100 Hz) -> compressor(-20 dB, 4:1) -> limiter(-0.1 dB) ->
//	reverb(0.3, 0.2) -> gain(+3 dB) -> stereo_widen(1.2) ->
//	band_attenuate(200-2000 Hz, -18 dB)
//
// It is a plain value; build any effects.Chain to replace it.
//
// # Chords
//
// SynthesizeNoteTrack maps each labelled interval of a chords.Timeline to one
// note per chord tone using the default chord table. Unknown labels and "N"
// produce no notes:
//
//	tl, _ := chords.ReadLabFile("piano.lab")
//	track := stemfx.SynthesizeNoteTrack(tl, 0, 100)
//	_ = midi.WriteFile("piano.mid", track, midi.DefaultOptions())
//
// Use chords.Table directly for custom voicings.
//
// # Subpackages
//
//   - audio: the Buffer type, decoder registry, resampling and downmix
//   - formats: WAV, MP3, Ogg Vorbis and AIFF decoding, WAV encoding
//   - effects: filters, dynamics, reverb, stereo width and the chain runner
//   - chords: pitch names, chord tables, lab files and note synthesis
//   - midi: Standard MIDI File encoding and decoding of note tracks
//   - analysis: peak, RMS and per-band levels
//   - mastering: stem layout, reference matching and the end-to-end job
//   - config: YAML and environment configuration
package stemfx
