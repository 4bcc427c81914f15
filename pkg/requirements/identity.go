package requirements

import (
	"regexp"
	"strings"
)

// Kind classifies a requirement line.
type Kind int

const (
	// KindNone marks blank lines and standalone comments.
	KindNone Kind = iota

	// KindPlain is an ordinary package entry, optionally with extras and
	// version specifiers (e.g. "requests[security]>=2.28.0").
	KindPlain

	// KindLocalPath is a relative path reference ("./pkg", "../pkg").
	KindLocalPath

	// KindURL is a VCS or direct-URL reference ("git+https://...",
	// "pkg @ https://...").
	KindURL
)

// Identity is the canonical identity derived from one requirement line.
// It is computed fresh for every matching or sorting operation and never
// cached across lines.
type Identity struct {
	// Name is the extracted package name. Empty for blank lines, standalone
	// comments, and URL references with no recoverable name.
	Name string

	// Kind is the entry kind.
	Kind Kind

	// Comment reports whether the line is a standalone comment.
	Comment bool
}

// urlPrefixes are the VCS and direct-URL schemes recognized in requirement
// lines, per pip's VCS support and PEP 440 direct references.
var urlPrefixes = []string{
	"git+", "git://", "hg+", "svn+", "bzr+",
	"http://", "https://", "file://",
}

var (
	// specOpRE matches the first version-specifier operator. Two-character
	// operators come first so "~=" is not split as "~" + "=".
	specOpRE = regexp.MustCompile(`~=|==|>=|<=|!=|>|<`)

	// repoNameRE captures the last path segment of a repository URL before
	// an optional .git suffix and before a revision or fragment marker.
	repoNameRE = regexp.MustCompile(`/([^/]+?)(?:\.git)?(?:@|#|$)`)
)

// Extract derives the Identity of a single requirement line. It never fails:
// malformed lines degrade to an Identity with an empty name rather than an
// error.
func Extract(line string) Identity {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Identity{Kind: KindNone}
	}
	if strings.HasPrefix(trimmed, "#") {
		return Identity{Kind: KindNone, Comment: true}
	}
	trimmed = strings.TrimSpace(stripInlineComment(trimmed))

	if isURLRequirement(trimmed) {
		return Identity{Kind: KindURL, Name: urlPackageName(trimmed)}
	}

	if strings.HasPrefix(trimmed, "./") || strings.HasPrefix(trimmed, "../") {
		segments := strings.Split(trimmed, "/")
		return Identity{Kind: KindLocalPath, Name: segments[len(segments)-1]}
	}

	return Identity{Kind: KindPlain, Name: plainPackageName(trimmed)}
}

// isURLRequirement reports whether the line is a VCS or direct-URL reference.
func isURLRequirement(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return strings.Contains(lower, " @ ")
}

// urlPackageName extracts a package name from a URL requirement with this
// precedence: #egg= fragment, PEP 440 "name @ url" syntax, then the
// repository name for github.com/gitlab.com URLs. Returns "" when no name is
// recoverable; such lines are unmatchable but never an error.
func urlPackageName(line string) string {
	lower := strings.ToLower(strings.TrimSpace(line))

	if idx := strings.Index(lower, "#egg="); idx >= 0 {
		name := lower[idx+len("#egg="):]
		name = strings.SplitN(name, "&", 2)[0]
		name = strings.SplitN(name, "#", 2)[0]
		return strings.TrimSpace(name)
	}

	if idx := strings.Index(lower, " @ "); idx >= 0 {
		return strings.TrimSpace(lower[:idx])
	}

	if strings.Contains(lower, "github.com") || strings.Contains(lower, "gitlab.com") {
		if m := repoNameRE.FindStringSubmatch(lower); len(m) > 1 {
			return m[1]
		}
	}

	return ""
}

// plainPackageName strips the extras suffix and everything from the first
// version-specifier operator onward.
func plainPackageName(line string) string {
	name := strings.SplitN(line, "[", 2)[0]
	if loc := specOpRE.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	}
	return strings.TrimSpace(name)
}

// stripInlineComment removes a trailing inline comment. A '#' only starts an
// inline comment when preceded by whitespace; a '#' embedded in a URL
// fragment (e.g. "#egg=") is part of the requirement.
func stripInlineComment(line string) string {
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && (line[i-1] == ' ' || line[i-1] == '\t') {
			return line[:i]
		}
	}
	return line
}
