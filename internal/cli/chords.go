// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"github.com/ik5/stemfx/chords"
	"github.com/ik5/stemfx/midi"
	"github.com/spf13/cobra"
)

func newChordsCmd(a *app) *cobra.Command {
	var trackName string

	cmd := &cobra.Command{
		Use:   "chords <chords.lab> <out.mid>",
		Short: "Synthesize a chord label file into a MIDI note track",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			tx := a.startTransaction(cmd.Context(), "stemfx.chords")
			defer func() { finish(tx, err) }()

			tl, err := chords.ReadLabFile(args[0])
			if err != nil {
				return err
			}
			table, err := a.cfg.ChordTable()
			if err != nil {
				return err
			}

			track := table.Synthesize(tl, a.cfg.Instrument, a.cfg.Velocity)
			a.logger.Printf("%d intervals -> %d notes", len(tl), len(track.Notes))

			opts := a.midiOptions()
			if trackName != "" {
				opts.TrackName = trackName
			}
			if err := midi.WriteFile(args[1], track, opts); err != nil {
				return err
			}

			PrintStage(a.out, "wrote "+args[1])
			PrintKV(a.out, "intervals", len(tl))
			PrintKV(a.out, "notes", len(track.Notes))
			PrintKV(a.out, "duration", track.Duration())

			return nil
		},
	}
	cmd.Flags().StringVar(&trackName, "track-name", "", "MIDI track name")

	return cmd
}

func (a *app) midiOptions() midi.Options {
	opts := midi.DefaultOptions()
	if a.cfg.TempoBPM > 0 {
		opts.TempoBPM = a.cfg.TempoBPM
	}

	return opts
}
