// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"github.com/getsentry/sentry-go"
	"github.com/ik5/stemfx/chords"
	"github.com/ik5/stemfx/mastering"
	"github.com/spf13/cobra"
)

func newProcessCmd(a *app) *cobra.Command {
	var labPath string

	cmd := &cobra.Command{
		Use:   "process <stems-dir> <reference> <out-dir>",
		Short: "Turn the piano stem into a chord MIDI track and a mastered, processed WAV",
		Long: `process reads the piano stem from a separated stems directory, synthesizes
its chord labels into MIDI, masters it against the reference and runs the effect
chain. Output files are named after the reference mix. Chord labels come from
--lab, or from piano.lab next to the stem.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			tx := a.startTransaction(cmd.Context(), "stemfx.process")
			defer func() { finish(tx, err) }()

			chain, err := a.cfg.EffectChain()
			if err != nil {
				return err
			}
			table, err := a.cfg.ChordTable()
			if err != nil {
				return err
			}

			var span *sentry.Span
			job := mastering.Job{
				Input:       args[1],
				OutDir:      args[2],
				Separator:   mastering.StemLayout{Dir: args[0]},
				Recognizer:  chords.LabRecognizer{Path: labPath},
				Matcher:     mastering.LoudnessMatcher{},
				Chain:       chain,
				Table:       table,
				Velocity:    a.cfg.Velocity,
				Instrument:  a.cfg.Instrument,
				MIDIOptions: a.midiOptions(),
				OutputRate:  a.cfg.OutputRate,
				BitDepth:    a.cfg.BitDepth,
				Progress: func(stage string) {
					if span != nil {
						span.Finish()
					}
					span = sentry.StartSpan(tx.Context(), "stage."+stage)
					PrintStage(a.out, stage)
				},
			}

			res, err := mastering.Run(tx.Context(), job)
			if span != nil {
				span.Finish()
			}
			if err != nil {
				return err
			}

			PrintKV(a.out, "midi", res.MIDIPath)
			PrintKV(a.out, "mastered", res.MasteredPath)
			PrintKV(a.out, "final", res.FinalPath)
			PrintKV(a.out, "notes", len(res.Track.Notes))
			PrintReport(a.out, res.Before, res.After)

			return nil
		},
	}
	cmd.Flags().StringVar(&labPath, "lab", "", "chord label file for the piano stem")

	return cmd
}
