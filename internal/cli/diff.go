package cli

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// renderDiff produces a colored unified diff between two versions of a
// requirements file. The full file is used as context so the preview shows
// the final ordering, not just the changed hunks.
func renderDiff(path, before, after string) (string, error) {
	edits := udiff.Strings(before, after)
	unified, err := udiff.ToUnified("a/"+path, "b/"+path, before, edits, len(strings.Split(before, "\n")))
	if err != nil {
		return "", fmt.Errorf("diffing %s: %w", path, err)
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(unified, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(render(StyleDim, line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(render(StyleDim, line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(render(styleAdded, line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(render(styleRemoved, line))
		default:
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
