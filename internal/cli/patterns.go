package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"text-ca/internal/pattern"
)

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns [name]",
		Short: "List built-in patterns or print one stencil",
		Long: `Without arguments, patterns lists the built-in library. With a name
or a YAML file path it prints that pattern's stencil, '.' for dead
cells and 'O' for live ones.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printPattern(cmd, args[0])
			}
			return listPatterns(cmd)
		},
	}
	return cmd
}

func listPatterns(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	for _, name := range pattern.Names() {
		p, _ := pattern.Builtin(name)
		pw, ph := p.Size()
		fmt.Fprintf(w, "%-12s %2dx%-3d %s\n", name, pw, ph, p.Comment)
	}
	return nil
}

func printPattern(cmd *cobra.Command, name string) error {
	p, err := pattern.Resolve(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "resolve pattern", err)
	}
	w := cmd.OutOrStdout()
	if p.Comment != "" {
		fmt.Fprintf(w, "# %s: %s\n", p.Name, p.Comment)
	}
	for _, row := range p.Rows {
		fmt.Fprintln(w, row)
	}
	return nil
}
