package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reqs-dev/reqs/pkg/requirements"
)

// removeCommand creates the remove command.
func (c *CLI) removeCommand() *cobra.Command {
	var flags editFlags

	cmd := &cobra.Command{
		Use:     "remove <package> [paths...]",
		Aliases: []string{"rm"},
		Short:   "Remove a package from requirements files",
		Long: `Remove every line declaring the package from requirements.txt files
under the given paths, then re-sort. Name matching is case-insensitive and
treats hyphens and underscores as equivalent.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			_, _, err := c.runEdit(args[1:], flags, func(lines []string, cmp requirements.Comparator) ([]string, string, bool) {
				updated, removed := requirements.Remove(lines, pkg, flags.mode(), cmp)
				return updated, fmt.Sprintf("removed %s (%d %s)", pkg, removed, plural("entry", "entries", removed)), removed > 0
			})
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

func plural(one, many string, n int) string {
	if n == 1 {
		return one
	}
	return many
}
