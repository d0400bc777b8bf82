// SPDX-License-Identifier: EPL-2.0

package mastering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/stemfx/chords"
)

// Stem names produced by a five-stem separation.
const (
	StemVocals        = "vocals"
	StemAccompaniment = "accompaniment"
	StemBass          = "bass"
	StemDrums         = "drums"
	StemPiano         = "piano"
)

// Stems maps a stem name to its audio file.
type Stems map[string]string

// Separator splits a mixed recording into stems written under outDir.
type Separator interface {
	Separate(ctx context.Context, input, outDir string) (Stems, error)
}

// Recognizer produces a chord timeline for an audio file.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string) (chords.Timeline, error)
}

// StemLayout is a Separator for output that has already been separated: it
// maps the conventional file names inside Dir and ignores the input.
// The accompaniment stem is stored as other.wav.
type StemLayout struct {
	Dir string
}

var stemFiles = map[string]string{
	StemVocals:        "vocals.wav",
	StemAccompaniment: "other.wav",
	StemBass:          "bass.wav",
	StemDrums:         "drums.wav",
	StemPiano:         "piano.wav",
}

func (l StemLayout) Separate(ctx context.Context, _, outDir string) (Stems, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := l.Dir
	if dir == "" {
		dir = outDir
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	stems := make(Stems, len(stemFiles))
	for name, file := range stemFiles {
		stems[name] = filepath.Join(dir, file)
	}

	return stems, nil
}

// Path returns the file for a stem, failing if it is unknown or absent on
// disk.
func (s Stems) Path(name string) (string, error) {
	path, ok := s[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingStem, name)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingStem, name, err)
	}

	return path, nil
}
