// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/utils"
)

// go-mp3 always emits 16-bit little-endian stereo.
const (
	channels       = 2
	bytesPerSample = 2
	bytesPerFrame  = channels * bytesPerSample
)

// mp3Reader is the subset of gomp3.Decoder used here, to allow testing.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec mp3Reader) (*audio.Buffer, error) {
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	// drop a trailing partial frame
	frames := len(raw) / bytesPerFrame
	out := audio.NewBuffer(channels, dec.SampleRate(), frames)
	for i := range out.Data {
		v := int16(binary.LittleEndian.Uint16(raw[i*bytesPerSample:]))
		out.Data[i] = utils.PCMToFloat(int(v), 16)
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out, nil
}
