package cli

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/reqs-dev/reqs/pkg/requirements"
)

// sortCommand creates the sort command.
func (c *CLI) sortCommand() *cobra.Command {
	var (
		flags            editFlags
		preserveComments bool
	)

	cmd := &cobra.Command{
		Use:   "sort [paths...]",
		Short: "Sort requirements files in place",
		Long: `Sort every requirements.txt file under the given paths.

By default comments and blank lines are dropped and local-path, VCS, and
editable references move to the end of the file, matching the historical
output. With --preserve-comments, blank-line sections and standalone
comments are kept and each section is sorted on its own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.legacySort = !preserveComments
			changed, total, err := c.runEdit(args, flags, func(lines []string, cmp requirements.Comparator) ([]string, string, bool) {
				sorted := requirements.Sort(lines, flags.mode(), cmp)
				return sorted, "sorted", !slices.Equal(sorted, lines)
			})
			if err != nil {
				return err
			}
			if total > 1 {
				printInfo("Sorted %d of %d files", changed, total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.preview, "preview", false, "show a diff instead of writing files")
	cmd.Flags().BoolVar(&flags.preview, "dry-run", false, "alias for --preview")
	cmd.Flags().StringVar(&flags.locale, "locale", "", "collation locale for sorting (default: detected)")
	cmd.Flags().BoolVar(&preserveComments, "preserve-comments", false, "keep comments and blank-line sections")

	return cmd
}
