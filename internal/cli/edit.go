package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reqs-dev/reqs/pkg/collation"
	"github.com/reqs-dev/reqs/pkg/files"
	"github.com/reqs-dev/reqs/pkg/requirements"
)

// editFlags are the flags shared by every command that rewrites files.
type editFlags struct {
	preview    bool
	locale     string
	legacySort bool
}

// register adds the shared editing flags to cmd.
func (f *editFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.preview, "preview", false, "show a diff instead of writing files")
	cmd.Flags().BoolVar(&f.preview, "dry-run", false, "alias for --preview")
	cmd.Flags().StringVar(&f.locale, "locale", "", "collation locale for sorting (default: detected)")
	cmd.Flags().BoolVar(&f.legacySort, "legacy-sort", false, "drop comments and defer path references when sorting")
}

func (f *editFlags) mode() requirements.Mode {
	if f.legacySort {
		return requirements.ModeLegacy
	}
	return requirements.ModeSections
}

// editFunc applies one command's change to a file's lines. It returns the
// updated lines, a per-file summary for output, and whether anything
// changed.
type editFunc func(lines []string, cmp requirements.Comparator) ([]string, string, bool)

// runEdit is the shared driver for add, remove, update, and sort: gather
// target files, bind the collation locale once for the batch, apply the
// change to each file, then write or preview. It returns how many files
// changed along with how many were considered.
func (c *CLI) runEdit(paths []string, flags editFlags, apply editFunc) (changed, total int, err error) {
	targets, err := files.Gather(paths, c.Logger)
	if err != nil {
		return 0, 0, err
	}
	if len(targets) == 0 {
		return 0, 0, nil
	}

	locale := flags.locale
	if locale == "" {
		locale = c.cfg.Locale
	}
	cmp, release := collation.Acquire(locale, c.Logger)
	defer release()

	for _, path := range targets {
		lines, err := files.ReadLines(path)
		if err != nil {
			return changed, len(targets), fmt.Errorf("reading %s: %w", path, err)
		}

		updated, summary, modified := apply(lines, requirements.Comparator(cmp))
		if !modified {
			c.Logger.Debugf("no changes in %s", path)
			continue
		}

		if flags.preview {
			diff, err := renderDiff(path, files.Render(lines), files.Render(updated))
			if err != nil {
				return changed, len(targets), err
			}
			printPathHeader(path)
			fmt.Print(diff)
			changed++
			continue
		}

		if !files.CheckWritable(path) {
			printWarning("%s is not writable, skipping", path)
			continue
		}
		if err := files.WriteLines(path, updated); err != nil {
			return changed, len(targets), fmt.Errorf("writing %s: %w", path, err)
		}
		printSuccess("%s: %s", path, summary)
		changed++
	}

	if changed == 0 {
		printInfo("Nothing to do")
	} else if flags.preview {
		printDetail("Preview only, no files were written")
	}
	return changed, len(targets), nil
}
