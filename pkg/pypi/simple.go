package pypi

import (
	"errors"
	"io"
	"regexp"
	"sort"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	"golang.org/x/net/html"
)

// projectFile is one released file listed on a project's Simple API page.
type projectFile struct {
	Name   string `json:"name"`
	Yanked bool   `json:"yanked"`
}

// parseSimpleIndex extracts released file names and their yanked status from
// a PEP 503 project page. Anchor text ending in .whl or .tar.gz is treated
// as a file; a data-yanked attribute on the anchor marks it withdrawn.
func parseSimpleIndex(r io.Reader) ([]projectFile, error) {
	z := html.NewTokenizer(r)

	var files []projectFile
	inAnchor := false
	yanked := false

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return files, nil
			}
			return files, z.Err()

		case html.StartTagToken:
			tok := z.Token()
			if tok.Data == "a" {
				inAnchor = true
				yanked = false
				for _, attr := range tok.Attr {
					if attr.Key == "data-yanked" {
						yanked = true
					}
				}
			}

		case html.TextToken:
			if !inAnchor {
				continue
			}
			text := strings.TrimSpace(string(z.Text()))
			if strings.HasSuffix(text, ".whl") || strings.HasSuffix(text, ".tar.gz") {
				files = append(files, projectFile{Name: text, Yanked: yanked})
			}

		case html.EndTagToken:
			if z.Token().Data == "a" {
				inAnchor = false
			}
		}
	}
}

var separatorRunRE = regexp.MustCompile(`[-_.]+`)

// normalizeName applies PEP 503 name normalization: lowercase with runs of
// '-', '_', and '.' collapsed to a single hyphen. Used for Simple API URLs
// and filename matching.
func normalizeName(name string) string {
	return separatorRunRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// filenamePatterns builds the wheel and sdist regexes for one package.
// Filenames may use any separator variant of the name, so each name part is
// matched against any run of separators:
//
//	mypackage-1.2.3-py3-none-any.whl
//	my_package-1.2.3.tar.gz
func filenamePatterns(pkg string) (wheel, sdist *regexp.Regexp) {
	parts := strings.Split(normalizeName(pkg), "-")
	quoted := make([]string, len(parts))
	for i, part := range parts {
		quoted[i] = regexp.QuoteMeta(part)
	}
	name := strings.Join(quoted, `[-_.]+`)

	wheel = regexp.MustCompile(`^` + name + `[-_](.+?)-(?:py|cp)\d`)
	sdist = regexp.MustCompile(`^` + name + `[-_](.+?)\.tar\.gz$`)
	return wheel, sdist
}

// extractVersion pulls the version out of a released filename, or "" when
// the filename does not belong to the package or has no recognizable form.
func extractVersion(filename string, wheel, sdist *regexp.Regexp) string {
	lower := strings.ToLower(filename)
	if m := wheel.FindStringSubmatch(lower); len(m) > 1 {
		return m[1]
	}
	if m := sdist.FindStringSubmatch(lower); len(m) > 1 {
		return m[1]
	}
	return ""
}

// extractVersions collects the distinct, PEP 440-valid versions for pkg from
// the project's file list, sorted newest first. Yanked files are skipped
// unless includeYanked is set; filenames with legacy version forms are
// silently dropped.
func extractVersions(files []projectFile, pkg string, includeYanked bool) []string {
	wheel, sdist := filenamePatterns(pkg)

	parsed := make(map[string]pep440.Version)
	for _, f := range files {
		if f.Yanked && !includeYanked {
			continue
		}
		raw := extractVersion(f.Name, wheel, sdist)
		if raw == "" {
			continue
		}
		if _, seen := parsed[raw]; seen {
			continue
		}
		v, err := pep440.Parse(raw)
		if err != nil {
			continue
		}
		parsed[raw] = v
	}

	versions := make([]string, 0, len(parsed))
	for raw := range parsed {
		versions = append(versions, raw)
	}
	sort.Slice(versions, func(i, j int) bool {
		vi, vj := parsed[versions[i]], parsed[versions[j]]
		if vi.Equal(vj) {
			// Distinct spellings of the same version ("1.0" vs "1.0.0").
			return versions[i] > versions[j]
		}
		return vi.GreaterThan(vj)
	})
	return versions
}
