package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reqs-dev/reqs/pkg/files"
	"github.com/reqs-dev/reqs/pkg/requirements"
)

// findCommand creates the find command.
func (c *CLI) findCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <package> [paths...]",
		Short: "Locate requirements files declaring a package",
		Long: `Print every requirements.txt file under the given paths that declares
the package. With --verbose, the matching lines are printed as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			targets, err := files.Gather(args[1:], c.Logger)
			if err != nil {
				return err
			}

			verbose := c.Logger.GetLevel() <= LogDebug
			found := 0
			for _, path := range targets {
				lines, err := files.ReadLines(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				hits := requirements.Find(lines, pkg)
				if len(hits) == 0 {
					continue
				}
				found++
				printPathHeader(path)
				if verbose {
					for _, i := range hits {
						printDetail("%s", lines[i])
					}
				}
			}

			if found == 0 {
				printInfo("%s not found in %d %s", pkg, len(targets), plural("file", "files", len(targets)))
			}
			return nil
		},
	}

	return cmd
}
