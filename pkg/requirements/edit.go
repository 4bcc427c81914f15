package requirements

import "strings"

// Find returns the indices of lines matching the target package, in file
// order.
func Find(lines []string, target string) []int {
	var hits []int
	for i, line := range lines {
		if Matches(target, line) {
			hits = append(hits, i)
		}
	}
	return hits
}

// Add appends the package (unversioned) and re-sorts, unless a matching
// entry already exists. The second return value reports whether the line
// list changed.
func Add(lines []string, target string, mode Mode, cmp Comparator) ([]string, bool) {
	if len(Find(lines, target)) > 0 {
		return lines, false
	}
	updated := make([]string, len(lines), len(lines)+1)
	copy(updated, lines)
	updated = append(updated, target)
	return Sort(updated, mode, cmp), true
}

// Remove deletes every line matching the target package and re-sorts.
// It returns the number of lines removed.
func Remove(lines []string, target string, mode Mode, cmp Comparator) ([]string, int) {
	kept := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if Matches(target, line) {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	if removed == 0 {
		return lines, 0
	}
	return Sort(kept, mode, cmp), removed
}

// Update replaces every line matching the target package with
// "<target><specifier>", keeping the line's inline trailing comment, then
// re-sorts. The specifier should already be normalized with
// [NormalizeSpecifier]. It returns the number of lines replaced.
func Update(lines []string, target, specifier string, mode Mode, cmp Comparator) ([]string, int) {
	updated := make([]string, len(lines))
	copy(updated, lines)

	modified := 0
	for i, line := range updated {
		if !Matches(target, line) {
			continue
		}
		updated[i] = target + specifier + inlineCommentSuffix(line)
		modified++
	}
	if modified == 0 {
		return lines, 0
	}
	return Sort(updated, mode, cmp), modified
}

// inlineCommentSuffix returns the line's inline comment with a two-space
// separator, or "" when the line has none.
func inlineCommentSuffix(line string) string {
	trimmed := strings.TrimSpace(line)
	stripped := stripInlineComment(trimmed)
	if len(stripped) == len(trimmed) {
		return ""
	}
	return "  " + strings.TrimSpace(trimmed[len(stripped):])
}
