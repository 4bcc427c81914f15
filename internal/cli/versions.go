package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reqs-dev/reqs/pkg/pypi"
)

// versionsCommand creates the versions command.
func (c *CLI) versionsCommand() *cobra.Command {
	var (
		all           bool
		limit         int
		onePerLine    bool
		indexURL      string
		includeYanked bool
		refresh       bool
		noCache       bool
	)

	cmd := &cobra.Command{
		Use:   "versions <package>",
		Short: "List available versions of a package",
		Long: `List the versions of a package published on a PEP 503 Simple API
index (PyPI by default), newest first. Yanked releases are excluded unless
--include-yanked is given.

The index URL is taken from --index-url, the config, or pip's own
configuration, in that order. Responses are cached; use --refresh to
bypass the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]

			backend := c.newCache(cmd, noCache)
			defer backend.Close()
			client := pypi.NewClient(backend, c.cacheTTL())

			primary := indexURL
			if primary == "" {
				primary = c.cfg.PyPI.IndexURL
			}

			spin := newSpinner(cmd.Context(), fmt.Sprintf("Fetching versions for %s...", pkg))
			spin.Start()

			versions, servedBy, err := client.FetchVersionsWithFallback(
				cmd.Context(), pkg, primary, c.cfg.PyPI.FallbackURL,
				pypi.FetchOptions{IncludeYanked: includeYanked, Refresh: refresh},
			)
			if err != nil {
				spin.StopWithError(fmt.Sprintf("Could not fetch versions for %s", pkg))
				return err
			}
			spin.Stop()

			c.Logger.Debugf("%d versions from %s", len(versions), servedBy)

			if len(versions) == 0 {
				printInfo("%s has no releases with recognizable versions", pkg)
				return nil
			}

			shown := versions
			if !all && limit > 0 && len(shown) > limit {
				shown = shown[:limit]
			}

			printInfo("%s: %d %s", pkg, len(versions), plural("version", "versions", len(versions)))
			if onePerLine {
				for _, v := range shown {
					fmt.Println(render(StyleVersion, v))
				}
			} else {
				styled := make([]string, len(shown))
				for i, v := range shown {
					styled[i] = render(StyleVersion, v)
				}
				printDetail("%s", strings.Join(styled, ", "))
			}
			if len(shown) < len(versions) {
				printDetail("%d more, use --all to show everything", len(versions)-len(shown))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "show every version")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of versions to show")
	cmd.Flags().BoolVarP(&onePerLine, "one-per-line", "1", false, "print one version per line")
	cmd.Flags().StringVar(&indexURL, "index-url", "", "Simple API index URL")
	cmd.Flags().BoolVar(&includeYanked, "include-yanked", false, "include yanked releases")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
