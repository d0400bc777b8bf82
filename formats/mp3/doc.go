// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into audio.Buffer values using
// github.com/hajimehoshi/go-mp3.
//
//	f, _ := os.Open("mix.mp3")
//	buf, err := mp3.Decoder{}.Decode(f)
//
// The output is always stereo at the file's sample rate, normalised to
// float32 in [-1.0, 1.0). Mono MP3s are duplicated to both channels by the
// underlying decoder.
package mp3
