// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/ik5/stemfx/config"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/ik5/stemfx/internal/cli.Version=...".
var Version = "dev"

// app is the state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	outputRate int

	cfg    config.Config
	runID  string
	logger *log.Logger
	out    io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "stemfx",
		Short:         "Master instrument stems and turn chord timelines into MIDI",
		Long:          `stemfx applies a mastering effect chain to separated stems and synthesizes chord label timelines into MIDI note tracks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.IntVar(&a.outputRate, "output-rate", 0, "resample the output to this rate (Hz)")

	root.AddCommand(
		newMasterCmd(a),
		newEffectsCmd(a),
		newChordsCmd(a),
		newProcessCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()
	a.runID = uuid.New().String()

	logOut := io.Discard
	if a.verbose {
		logOut = cmd.ErrOrStderr()
	}
	a.logger = log.New(logOut, "stemfx: ", log.LstdFlags)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output-rate") {
		cfg.OutputRate = a.outputRate
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger.Printf("run %s: config %q, velocity %d, instrument %d, output rate %d",
		a.runID, a.configPath, cfg.Velocity, cfg.Instrument, cfg.OutputRate)

	return nil
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	flush := setupSentry()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		captureError(err)
		PrintError(err.Error())
		flush()
		os.Exit(1)
	}
	flush()
}
