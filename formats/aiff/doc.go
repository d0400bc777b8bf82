// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio.Buffer values using
// github.com/go-audio/aiff.
//
//	f, _ := os.Open("stem.aiff")
//	buf, err := aiff.Decoder{}.Decode(f)
//
// 8, 16, 24 and 32-bit integer samples are supported and normalised to
// float32 in [-1.0, 1.0). go-audio needs an io.ReadSeeker; other readers
// are buffered into memory first.
package aiff
