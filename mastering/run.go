// SPDX-License-Identifier: EPL-2.0

package mastering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/stemfx/analysis"
	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/chords"
	"github.com/ik5/stemfx/effects"
	"github.com/ik5/stemfx/formats"
	"github.com/ik5/stemfx/midi"
)

// Stages reported through Job.Progress.
const (
	StageSeparate   = "separate"
	StageChords     = "chords"
	StageMaster     = "master"
	StageEffects    = "effects"
	StageWriteAudio = "write"
)

// Job describes one end-to-end run: separate the input, turn the piano
// stem's chords into MIDI, master the piano stem against the reference and
// run it through the effect chain.
type Job struct {
	Input     string // mixed recording
	Reference string // mastering reference; Input when empty
	OutDir    string

	Separator  Separator
	Recognizer Recognizer
	Matcher    Matcher

	Chain       effects.Chain
	Table       chords.Table
	Velocity    int
	Instrument  int
	MIDIOptions midi.Options
	OutputRate  int // 0 keeps the stem rate
	BitDepth    int

	// Progress, if set, is called as each stage starts.
	Progress func(stage string)
}

// Result lists what a run produced.
type Result struct {
	Stems        Stems
	Timeline     chords.Timeline
	Track        chords.NoteTrack
	MIDIPath     string
	MasteredPath string
	FinalPath    string
	Before       analysis.Report
	After        analysis.Report
}

func (j Job) baseName() string {
	return strings.TrimSuffix(filepath.Base(j.Input), filepath.Ext(j.Input))
}

func (j Job) progress(stage string) {
	if j.Progress != nil {
		j.Progress(stage)
	}
}

func (j Job) check() error {
	switch {
	case j.Input == "":
		return fmt.Errorf("%w: no input", ErrIncompleteJob)
	case j.OutDir == "":
		return fmt.Errorf("%w: no output directory", ErrIncompleteJob)
	case j.Separator == nil || j.Recognizer == nil || j.Matcher == nil:
		return fmt.Errorf("%w: separator, recognizer and matcher are required", ErrIncompleteJob)
	}

	return nil
}

// Run executes the job. Cancellation is observed between stages; a stage
// that has started runs to completion.
func Run(ctx context.Context, j Job) (Result, error) {
	var res Result
	if err := j.check(); err != nil {
		return res, err
	}
	if j.Table == nil {
		j.Table = chords.DefaultTable()
	}
	if j.Chain == nil {
		j.Chain = effects.DefaultMasteringChain()
	}
	if j.Reference == "" {
		j.Reference = j.Input
	}

	if err := os.MkdirAll(j.OutDir, 0o755); err != nil {
		return res, err
	}
	base := j.baseName()

	j.progress(StageSeparate)
	stems, err := j.Separator.Separate(ctx, j.Input, j.OutDir)
	if err != nil {
		return res, fmt.Errorf("separating: %w", err)
	}
	res.Stems = stems

	piano, err := stems.Path(StemPiano)
	if err != nil {
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	j.progress(StageChords)
	res.Timeline, err = j.Recognizer.Recognize(ctx, piano)
	if err != nil {
		return res, fmt.Errorf("recognizing chords: %w", err)
	}
	res.Track = j.Table.Synthesize(res.Timeline, j.Instrument, j.Velocity)
	res.MIDIPath = filepath.Join(j.OutDir, base+"_chords.mid")
	if err := midi.WriteFile(res.MIDIPath, res.Track, j.MIDIOptions); err != nil {
		return res, fmt.Errorf("writing midi: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	j.progress(StageMaster)
	target, err := formats.ReadFile(piano)
	if err != nil {
		return res, err
	}
	reference, err := formats.ReadFile(j.Reference)
	if err != nil {
		return res, err
	}
	if res.Before, err = analysis.Analyze(target); err != nil {
		return res, err
	}
	mastered, err := j.Matcher.Match(ctx, target, reference)
	if err != nil {
		return res, fmt.Errorf("matching: %w", err)
	}
	res.MasteredPath = filepath.Join(j.OutDir, base+"_master.wav")
	if err := formats.WriteWAV(res.MasteredPath, mastered, j.BitDepth); err != nil {
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	j.progress(StageEffects)
	final, err := effects.Apply(mastered, j.Chain)
	if err != nil {
		return res, err
	}
	if j.OutputRate > 0 {
		if final, err = audio.Resample(final, j.OutputRate); err != nil {
			return res, err
		}
	}

	j.progress(StageWriteAudio)
	if res.After, err = analysis.Analyze(final); err != nil {
		return res, err
	}
	res.FinalPath = filepath.Join(j.OutDir, base+"_final.wav")
	if err := formats.WriteWAV(res.FinalPath, final, j.BitDepth); err != nil {
		return res, err
	}

	return res, nil
}
