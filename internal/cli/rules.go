package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"text-ca/pkg/rule"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules [notation]",
		Short: "List rule presets or canonicalize B/S notation",
		Long: `Without arguments, rules lists the named presets. With an argument
it resolves a preset name or B/S notation and prints the canonical
form, so "b863/s32" becomes "B368/S23".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				r, err := rule.Resolve(args[0])
				if err != nil {
					return WrapExitError(ExitCommandError, "resolve rule", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}
			for _, name := range rule.Names() {
				r, _ := rule.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, r)
			}
			return nil
		},
	}
	return cmd
}
