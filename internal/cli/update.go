package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reqs-dev/reqs/pkg/requirements"
)

// updateCommand creates the update command.
func (c *CLI) updateCommand() *cobra.Command {
	var flags editFlags

	cmd := &cobra.Command{
		Use:     "update <package> <version> [paths...]",
		Aliases: []string{"pin"},
		Short:   "Pin a package to a version in requirements files",
		Long: `Replace every line declaring the package with "<package><specifier>",
keeping any inline trailing comment, then re-sort.

A bare version like "2.31.0" is treated as "==2.31.0". Specifiers with an
explicit operator (>=, ~=, ...) are kept as given. The specifier is
validated before any file is touched.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			spec, err := requirements.NormalizeSpecifier(args[1])
			if err != nil {
				return err
			}
			_, _, err = c.runEdit(args[2:], flags, func(lines []string, cmp requirements.Comparator) ([]string, string, bool) {
				updated, modified := requirements.Update(lines, pkg, spec, flags.mode(), cmp)
				return updated, fmt.Sprintf("pinned %s%s (%d %s)", pkg, spec, modified, plural("entry", "entries", modified)), modified > 0
			})
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
