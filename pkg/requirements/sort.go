package requirements

import (
	"sort"
	"strings"
)

// Mode selects the output shape produced by Sort.
type Mode int

const (
	// ModeSections preserves blank-line sections and standalone comments.
	// Within each section comments keep their original order and entries are
	// sorted after them; sections are rejoined with single blank lines.
	ModeSections Mode = iota

	// ModeLegacy drops standalone comments and blank lines entirely, sorts
	// plain entries, and appends local-path, VCS, and editable references
	// after the sorted block in their original relative order. This matches
	// the historical output of the sort command.
	ModeLegacy
)

// Comparator is a three-way string comparison: negative when a < b, zero
// when equal, positive when a > b.
type Comparator func(a, b string) int

// SortKey extracts the portion of an entry line used for ordering: the line
// with its inline comment, extras bracket, and version-specifier suffix
// removed. Case is preserved so that collation (or byte order) decides
// case handling, matching byte-order tools like GNU sort under the C locale.
func SortKey(line string) string {
	key := strings.TrimSpace(line)
	key = strings.TrimSpace(stripInlineComment(key))
	key = strings.SplitN(key, "[", 2)[0]
	if loc := specOpRE.FindStringIndex(key); loc != nil {
		key = key[:loc[0]]
	}
	return strings.TrimSpace(key)
}

// Sort reorders requirement lines deterministically. The input slice is not
// modified. A nil cmp falls back to byte-order comparison. Sort is
// idempotent: applying it to its own output returns the same lines.
func Sort(lines []string, mode Mode, cmp Comparator) []string {
	if cmp == nil {
		cmp = strings.Compare
	}
	if mode == ModeLegacy {
		return sortLegacy(lines, cmp)
	}
	return sortSections(lines, cmp)
}

// section is a blank-line-delimited run of non-blank lines, split into
// standalone comments and entries. Sections are transient groupings
// reconstructed on every sort call.
type section struct {
	comments []string
	entries  []string
}

func sortSections(lines []string, cmp Comparator) []string {
	var sections []section
	current := section{}

	flush := func() {
		if len(current.comments) > 0 || len(current.entries) > 0 {
			sections = append(sections, current)
		}
		current = section{}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case strings.HasPrefix(trimmed, "#"):
			current.comments = append(current.comments, line)
		default:
			current.entries = append(current.entries, line)
		}
	}
	flush()

	var out []string
	for i, sec := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, sec.comments...)
		out = append(out, sortEntries(sec.entries, cmp)...)
	}
	return out
}

func sortLegacy(lines []string, cmp Comparator) []string {
	var regular, pathRefs []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if isPathReference(trimmed) {
			pathRefs = append(pathRefs, line)
		} else {
			regular = append(regular, line)
		}
	}

	out := sortEntries(regular, cmp)
	return append(out, pathRefs...)
}

func sortEntries(entries []string, cmp Comparator) []string {
	sorted := make([]string, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(SortKey(sorted[i]), SortKey(sorted[j])) < 0
	})
	return sorted
}

// isPathReference reports whether a line is a local-path, VCS, or editable
// reference that legacy mode defers to the end of the file.
func isPathReference(line string) bool {
	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lower, "./"), strings.HasPrefix(lower, "../"),
		strings.HasPrefix(lower, "-e ./"), strings.HasPrefix(lower, "-e ../"):
		return true
	case strings.HasPrefix(lower, "-e ") && strings.Contains(lower, "/"):
		return true
	}
	return isURLRequirement(line)
}
