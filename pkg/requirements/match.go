package requirements

import "strings"

// CanonicalName converts a package name to its canonical comparison form.
// Applies lowercase and replaces underscores with hyphens, following PEP 503
// normalization rules used by PyPI.
func CanonicalName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// Matches reports whether a requirement line refers to the given package.
//
// The trimmed line is first compared to the target verbatim. After that fast
// path all comparisons are case-insensitive with hyphens and underscores
// treated as equivalent, applied per entry kind:
//
//   - Plain entries match when the extras- and version-stripped name equals
//     the target.
//   - Local paths match when the target appears as a substring of the final
//     path segment, tolerating versioned archive names like
//     "mypackage_1.2.3.tar.gz".
//   - URL/VCS references match on the extracted name (#egg= fragment,
//     "name @ url" syntax, or github/gitlab repository name). References
//     with no recoverable name never match.
//
// Standalone comments never match.
func Matches(target, line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == target {
		return true
	}

	id := Extract(trimmed)
	if id.Comment || id.Kind == KindNone || id.Name == "" {
		return false
	}

	want := CanonicalName(target)
	got := CanonicalName(id.Name)

	if id.Kind == KindLocalPath {
		return strings.Contains(got, want)
	}
	return got == want
}
