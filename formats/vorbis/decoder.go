// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/stemfx/audio"
	"github.com/jfreymuth/oggvorbis"
)

var ErrNoChannels = errors.New("vorbis stream reports no channels")

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return fromInterleaved(data, format.Channels, format.SampleRate)
}

// fromInterleaved wraps decoded samples, trimming any trailing partial frame.
func fromInterleaved(data []float32, channels, sampleRate int) (*audio.Buffer, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	whole := len(data) - len(data)%channels
	out := &audio.Buffer{
		Data:       data[:whole:whole],
		Channels:   channels,
		SampleRate: sampleRate,
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out, nil
}
