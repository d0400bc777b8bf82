// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/utils"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decoder reads integer PCM WAV files of 8, 16, 24 or 32 bits, any channel
// count and any sample rate.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio needs to seek between chunks
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav samples: %w", err)
	}
	if pcm.Format == nil {
		return nil, ErrNoFormat
	}

	channels := pcm.Format.NumChannels
	frames := len(pcm.Data) / channels
	out := audio.NewBuffer(channels, pcm.Format.SampleRate, frames)
	depth := int(dec.BitDepth)
	for i := range out.Data {
		out.Data[i] = utils.PCMToFloat(pcm.Data[i], depth)
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out, nil
}
