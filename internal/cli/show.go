package cli

import (
	"github.com/spf13/cobra"

	"text-ca/internal/render"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	grid := &gridOptions{}
	var (
		gens   uint64
		status bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render a single generation and exit",
		Long: `Show builds a universe, optionally advances it, and prints one
snapshot. The output is plain text with no control codes, suitable
for piping and diffing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(grid, gens, status, cmd)
		},
	}

	addGridFlags(cmd, grid)
	cmd.Flags().Uint64Var(&gens, "gen", 0, "advance this many generations before rendering")
	cmd.Flags().BoolVar(&status, "status", false, "append a census line")

	return cmd
}

func runShow(grid *gridOptions, gens uint64, status bool, cmd *cobra.Command) error {
	u, err := buildUniverse(grid)
	if err != nil {
		return WrapExitError(ExitCommandError, "configure universe", err)
	}
	for i := uint64(0); i < gens; i++ {
		u.Step()
	}

	frames := render.NewFrameWriter(cmd.OutOrStdout(), false, status)
	if err := frames.WriteFrame(u.Render(), u.Census(), u.Name()); err != nil {
		return WrapExitError(ExitFailure, "write frame", err)
	}
	return nil
}
