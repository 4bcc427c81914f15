package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reqs-dev/reqs/pkg/requirements"
)

// addCommand creates the add command.
func (c *CLI) addCommand() *cobra.Command {
	var flags editFlags

	cmd := &cobra.Command{
		Use:   "add <package> [paths...]",
		Short: "Add a package to requirements files",
		Long: `Add a package to every requirements.txt file under the given paths.

The package is added unversioned and the file is re-sorted. Files that
already declare the package (under any name spelling or with any version
pin) are left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			_, _, err := c.runEdit(args[1:], flags, func(lines []string, cmp requirements.Comparator) ([]string, string, bool) {
				updated, changed := requirements.Add(lines, pkg, flags.mode(), cmp)
				return updated, fmt.Sprintf("added %s", pkg), changed
			})
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
