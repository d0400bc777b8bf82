// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into audio.Buffer values using
// github.com/jfreymuth/oggvorbis.
//
//	f, _ := os.Open("reference.ogg")
//	buf, err := vorbis.Decoder{}.Decode(f)
//
// Vorbis decodes natively to float32, so samples are passed through without
// re-quantisation. Channel count and sample rate come from the stream header.
package vorbis
