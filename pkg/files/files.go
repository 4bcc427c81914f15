// Package files discovers and reads requirements.txt files across a
// directory tree.
//
// Discovery recurses with a glob, skips virtualenv and build directories,
// and re-checks that every hit still exists before returning it. Files the
// process cannot write to are reported so callers can skip them instead of
// failing a whole batch.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
)

// FileName is the dependency file this tool edits.
const FileName = "requirements.txt"

// excludedDirRE matches path segments that hold vendored or generated
// copies of requirements files.
var excludedDirRE = regexp.MustCompile(`[/\\](venv|\.venv|virtualenv|\.aws-sam)([/\\]|$)`)

// ResolvePaths normalizes CLI path arguments. No arguments, or a bare "*"
// left unexpanded by the shell, means the current directory.
func ResolvePaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "*" {
			arg = "."
		}
		out = append(out, arg)
	}
	return out
}

// Gather expands each path argument into requirements.txt files. Directory
// arguments are searched recursively; file arguments are taken as-is with a
// warning when they are not named requirements.txt. Missing paths and empty
// directories produce warnings, not errors.
func Gather(paths []string, logger *log.Logger) ([]string, error) {
	seen := make(map[string]bool)
	var found []string

	add := func(path string) {
		if clean := filepath.Clean(path); !seen[clean] {
			seen[clean] = true
			found = append(found, clean)
		}
	}

	for _, path := range ResolvePaths(paths) {
		info, err := os.Stat(path)
		if err != nil {
			logger.Warnf("skipping %s: %v", path, err)
			continue
		}

		if !info.IsDir() {
			if filepath.Base(path) != FileName {
				logger.Warnf("%s is not a %s file", path, FileName)
			}
			add(path)
			continue
		}

		matches, err := doublestar.FilepathGlob(
			filepath.Join(path, "**", FileName),
			doublestar.WithFilesOnly(),
			doublestar.WithNoFollow(),
		)
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", path, err)
		}

		count := 0
		for _, m := range matches {
			if excludedDirRE.MatchString(m) {
				continue
			}
			// Files can vanish between glob and use.
			if _, err := os.Stat(m); err != nil {
				continue
			}
			add(m)
			count++
		}
		if count == 0 {
			logger.Warnf("no %s files under %s", FileName, path)
		}
	}

	sort.Strings(found)
	return found, nil
}

// CheckWritable reports whether the process can open path for writing.
func CheckWritable(path string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// ReadLines reads path and splits it into lines without terminators.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

// WriteLines writes lines to path with trailing blank lines stripped and a
// single final newline, preserving the file's existing permissions.
func WriteLines(path string, lines []string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(Render(lines)), perm)
}

// Render joins lines into file content: trailing blank lines dropped, one
// final newline.
func Render(lines []string) string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if end == 0 {
		return ""
	}
	return strings.Join(lines[:end], "\n") + "\n"
}
