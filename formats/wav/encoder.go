// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/utils"
)

// DefaultBitDepth is used when Encoder.BitDepth is zero.
const DefaultBitDepth = 16

// chunkFrames bounds the size of each IntBuffer handed to go-audio.
const chunkFrames = 8192

// Encoder writes integer PCM WAV. Samples outside [-1, 1] are clipped.
type Encoder struct {
	BitDepth int
}

func (e Encoder) bitDepth() int {
	if e.BitDepth == 0 {
		return DefaultBitDepth
	}

	return e.BitDepth
}

func (e Encoder) Encode(w io.WriteSeeker, b *audio.Buffer) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	depth := e.bitDepth()
	switch depth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	enc := gowav.NewEncoder(w, b.SampleRate, depth, b.Channels, formatPCM)

	chunk := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: b.Channels, SampleRate: b.SampleRate},
		Data:           make([]int, 0, chunkFrames*b.Channels),
		SourceBitDepth: depth,
	}

	// an empty buffer still needs the header written
	if len(b.Data) == 0 {
		if err := enc.Write(chunk); err != nil {
			return fmt.Errorf("writing wav header: %w", err)
		}
	}

	step := chunkFrames * b.Channels
	for start := 0; start < len(b.Data); start += step {
		end := min(start+step, len(b.Data))
		chunk.Data = chunk.Data[:0]
		for _, v := range b.Data[start:end] {
			chunk.Data = append(chunk.Data, utils.FloatToPCM(v, depth))
		}
		if err := enc.Write(chunk); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising wav header: %w", err)
	}

	return nil
}

// WriteFile encodes b to path, creating or truncating the file.
func (e Encoder) WriteFile(path string, b *audio.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := e.Encode(f, b); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
