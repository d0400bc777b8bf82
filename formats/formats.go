// SPDX-License-Identifier: EPL-2.0

// Package formats wires the individual decoders into one registry and
// provides the file-level read/write helpers used by the CLI.
package formats

import (
	"fmt"
	"os"

	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/formats/aiff"
	"github.com/ik5/stemfx/formats/mp3"
	"github.com/ik5/stemfx/formats/vorbis"
	"github.com/ik5/stemfx/formats/wav"
)

// NewRegistry returns a registry with every bundled decoder registered
// under its common file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}

var defaultRegistry = NewRegistry()

// ReadFile decodes the file at path, choosing the decoder by extension.
func ReadFile(path string) (*audio.Buffer, error) {
	return ReadFileWith(defaultRegistry, path)
}

// ReadFileWith is ReadFile with a caller-supplied registry.
func ReadFileWith(reg *audio.Registry, path string) (*audio.Buffer, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	buf, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return buf, nil
}

// WriteWAV writes b to path as integer PCM WAV at bitDepth (0 means 16).
func WriteWAV(path string, b *audio.Buffer, bitDepth int) error {
	if err := (wav.Encoder{BitDepth: bitDepth}).WriteFile(path, b); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
