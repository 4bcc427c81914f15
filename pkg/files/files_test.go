package files

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolvePaths(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty means cwd", nil, []string{"."}},
		{"star means cwd", []string{"*"}, []string{"."}},
		{"passthrough", []string{"services", "lib"}, []string{"services", "lib"}},
		{"mixed", []string{"*", "lib"}, []string{".", "lib"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePaths(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("ResolvePaths(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGather(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "requirements.txt"), "requests\n")
	writeFile(t, filepath.Join(dir, "services", "api", "requirements.txt"), "flask\n")
	writeFile(t, filepath.Join(dir, "venv", "requirements.txt"), "excluded\n")
	writeFile(t, filepath.Join(dir, ".venv", "lib", "requirements.txt"), "excluded\n")
	writeFile(t, filepath.Join(dir, "virtualenv", "requirements.txt"), "excluded\n")
	writeFile(t, filepath.Join(dir, ".aws-sam", "build", "requirements.txt"), "excluded\n")
	writeFile(t, filepath.Join(dir, "docs", "readme.txt"), "not a requirements file\n")

	got, err := Gather([]string{dir}, quietLogger())
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "requirements.txt"),
		filepath.Join(dir, "services", "api", "requirements.txt"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Gather = %v, want %v", got, want)
	}
}

func TestGatherExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	writeFile(t, path, "requests\n")

	got, err := Gather([]string{path}, quietLogger())
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	if !slices.Equal(got, []string{path}) {
		t.Errorf("Gather = %v, want %v", got, []string{path})
	}
}

func TestGatherMissingPath(t *testing.T) {
	got, err := Gather([]string{filepath.Join(t.TempDir(), "absent")}, quietLogger())
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Gather = %v, want no files", got)
	}
}

func TestGatherDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	writeFile(t, path, "requests\n")

	got, err := Gather([]string{dir, path}, quietLogger())
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	if !slices.Equal(got, []string{path}) {
		t.Errorf("Gather = %v, want single entry", got)
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	writeFile(t, path, "requests\n\nflask\n")

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	want := []string{"requests", "", "flask"}
	if !slices.Equal(got, want) {
		t.Errorf("ReadLines = %q, want %q", got, want)
	}
}

func TestReadLinesEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	writeFile(t, path, "")

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	if got != nil {
		t.Errorf("ReadLines = %q, want nil", got)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"plain", []string{"a", "b"}, "a\nb\n"},
		{"trailing blanks stripped", []string{"a", "", "  "}, "a\n"},
		{"interior blanks kept", []string{"a", "", "b"}, "a\n\nb\n"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.lines); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

func TestWriteLinesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	writeFile(t, path, "old\n")

	lines := []string{"flask", "requests"}
	if err := WriteLines(path, lines); err != nil {
		t.Fatalf("WriteLines error: %v", err)
	}

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines error: %v", err)
	}
	if !slices.Equal(got, lines) {
		t.Errorf("round trip = %q, want %q", got, lines)
	}
}

func TestCheckWritable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	writeFile(t, path, "requests\n")

	if !CheckWritable(path) {
		t.Error("fresh file should be writable")
	}

	if err := os.Chmod(path, 0o444); err != nil {
		t.Fatal(err)
	}
	if os.Getuid() != 0 && CheckWritable(path) {
		t.Error("read-only file should not be writable")
	}
}
