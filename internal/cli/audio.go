// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/ik5/stemfx/analysis"
	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/effects"
	"github.com/ik5/stemfx/formats"
	"github.com/ik5/stemfx/mastering"
	"github.com/spf13/cobra"
)

func newMasterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "master <target> <reference> <out.wav>",
		Short: "Match a track to a reference, then run the effect chain",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()
			tx := a.startTransaction(ctx, "stemfx.master")
			defer func() { finish(tx, err) }()

			target, err := a.read(tx.Context(), args[0])
			if err != nil {
				return err
			}
			reference, err := a.read(tx.Context(), args[1])
			if err != nil {
				return err
			}

			PrintStage(a.out, "matching "+args[0])
			matched, err := mastering.LoudnessMatcher{}.Match(ctx, target, reference)
			if err != nil {
				return fmt.Errorf("matching: %w", err)
			}

			return a.process(tx.Context(), target, matched, args[2])
		},
	}
}

func newEffectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "effects <in> <out.wav>",
		Short: "Run the configured effect chain over an audio file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			tx := a.startTransaction(cmd.Context(), "stemfx.effects")
			defer func() { finish(tx, err) }()

			in, err := a.read(tx.Context(), args[0])
			if err != nil {
				return err
			}

			return a.process(tx.Context(), in, in, args[1])
		},
	}
}

func (a *app) read(ctx context.Context, path string) (*audio.Buffer, error) {
	span := sentry.StartSpan(ctx, "audio.read")
	span.SetTag("path", path)
	defer span.Finish()

	b, err := formats.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Printf("read %s: %d ch, %d Hz, %v", path, b.Channels, b.SampleRate, b.Duration())

	return b, nil
}

// process applies the effect chain to in, resamples to the configured output
// rate and writes the result. original is only used for the level report.
func (a *app) process(ctx context.Context, original, in *audio.Buffer, outPath string) error {
	chain, err := a.cfg.EffectChain()
	if err != nil {
		return err
	}
	a.logger.Printf("chain: %s", chain)

	PrintStage(a.out, "applying effects")
	span := sentry.StartSpan(ctx, "effects.apply")
	out, err := effects.Apply(in, chain)
	span.Finish()
	if err != nil {
		return err
	}

	if a.cfg.OutputRate > 0 && a.cfg.OutputRate != out.SampleRate {
		a.logger.Printf("resampling %d Hz -> %d Hz", out.SampleRate, a.cfg.OutputRate)
		if out, err = audio.Resample(out, a.cfg.OutputRate); err != nil {
			return err
		}
	}

	PrintStage(a.out, "writing "+outPath)
	if err := formats.WriteWAV(outPath, out, a.cfg.BitDepth); err != nil {
		return err
	}

	before, err := analysis.Analyze(original)
	if err != nil {
		return err
	}
	after, err := analysis.Analyze(out)
	if err != nil {
		return err
	}
	PrintReport(a.out, before, after)

	return nil
}
