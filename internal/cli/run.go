package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"text-ca/internal/app"
	"text-ca/internal/core"
	"text-ca/internal/render"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	grid := &gridOptions{}
	var (
		interval time.Duration
		steps    uint64
		status   bool
		ansi     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate an automaton in the terminal",
		Long: `Run steps the automaton at a fixed cadence and renders each
generation to stdout. Without --steps it runs until interrupted;
Ctrl-C exits cleanly.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(grid, interval, steps, status, ansi, cmd)
		},
	}

	addGridFlags(cmd, grid)
	f := cmd.Flags()
	f.DurationVar(&interval, "interval", core.DefaultInterval, "time between generations")
	f.Uint64Var(&steps, "steps", 0, "stop after this many generations; 0 runs until interrupted")
	f.BoolVar(&status, "status", true, "print a census line under the grid")
	f.BoolVar(&ansi, "ansi", true, "repaint in place with ANSI control codes")

	return cmd
}

func runRun(grid *gridOptions, interval time.Duration, steps uint64, status, ansi bool, cmd *cobra.Command) error {
	u, err := buildUniverse(grid)
	if err != nil {
		return WrapExitError(ExitCommandError, "configure universe", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frames := render.NewFrameWriter(cmd.OutOrStdout(), ansi, status)
	runner := app.New(u, frames, app.Config{
		Interval: interval,
		MaxSteps: steps,
	})
	if err := runner.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return WrapExitError(ExitFailure, "run", err)
	}
	return nil
}
