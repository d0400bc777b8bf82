// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/utils"
)

// readFrames is how many frames are pulled from go-audio per call.
const readFrames = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	return decodeAll(dec, int(dec.BitDepth))
}

func decodeAll(dec aiffReader, bitDepth int) (*audio.Buffer, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	chunk := &goaudio.IntBuffer{
		Data:   make([]int, readFrames*format.NumChannels),
		Format: format,
	}

	var samples []float32
	for {
		n, err := dec.PCMBuffer(chunk)
		for _, v := range chunk.Data[:n] {
			samples = append(samples, utils.PCMToFloat(v, bitDepth))
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding aiff: %w", err)
		}
		if n == 0 || err == io.EOF {
			break
		}
	}

	whole := len(samples) - len(samples)%format.NumChannels
	out := &audio.Buffer{
		Data:       samples[:whole],
		Channels:   format.NumChannels,
		SampleRate: format.SampleRate,
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out, nil
}
