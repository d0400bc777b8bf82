// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory sample buffer shared by every stage
// of stemfx, plus the small set of whole-buffer primitives built on it.
//
// # Buffer
//
// A Buffer is a complete, fixed-length block of interleaved float32 samples
// tagged with its channel count and sample rate:
//
//	buf := audio.NewBuffer(2, 44100, 44100) // one second of stereo silence
//	left := buf.Channel(0)                  // de-interleaved float64 copy
//	buf.SetChannel(0, left)
//
// Stages never alias their input: each one takes a Buffer and returns a new
// one. Use Clone when a stage needs a mutable copy.
//
// # Resampling
//
// Resample converts a buffer to another sample rate using cubic
// interpolation. Downsampling is preceded by a one-pole low-pass:
//
//	out, err := audio.Resample(buf, 16000)
//
// # Channel Mixing
//
// Downmix averages all channels into a mono buffer. It is used for
// loudness measurement rather than as an output stage:
//
//	mono, err := audio.Downmix(buf)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("stem.WAV")
//
// # Errors
//
// Validation failures wrap the sentinels in errors.go and can be matched
// with errors.Is:
//
//	if errors.Is(err, audio.ErrMisalignedSamples) {
//	    // sample count is not a whole number of frames
//	}
package audio
