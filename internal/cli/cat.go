package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reqs-dev/reqs/pkg/files"
)

// catCommand creates the cat command.
func (c *CLI) catCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cat [paths...]",
		Short: "Print requirements files with path headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := files.Gather(args, c.Logger)
			if err != nil {
				return err
			}

			for i, path := range targets {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				if i > 0 {
					fmt.Println()
				}
				printPathHeader(path)
				fmt.Print(string(data))
			}
			return nil
		},
	}
}
