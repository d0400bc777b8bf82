// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files as audio.Buffer values.
//
// Both directions go through github.com/go-audio/wav, so any channel count,
// any sample rate and 8/16/24/32-bit depths are handled, including
// WAVE_FORMAT_EXTENSIBLE headers.
//
// # Decoding
//
//	f, _ := os.Open("piano.wav")
//	buf, err := wav.Decoder{}.Decode(f)
//
// Samples are normalised to float32 in [-1.0, 1.0).
//
// # Encoding
//
//	err := wav.Encoder{BitDepth: 16}.WriteFile("final.wav", buf)
//
// The encoder needs an io.WriteSeeker because the RIFF sizes are patched
// after the payload is written. Out-of-range samples are clipped.
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrUnsupportedEncoding: floating point or compressed payloads
//   - ErrUnsupportedBitDepth: a depth other than 8, 16, 24 or 32
package wav
