package cli

import (
	"strings"
	"testing"
)

func TestRenderDiff(t *testing.T) {
	SetColor(false)
	t.Cleanup(func() { SetColor(true) })

	before := "flask\nrequests\n"
	after := "django\nflask\nrequests\n"

	got, err := renderDiff("requirements.txt", before, after)
	if err != nil {
		t.Fatalf("renderDiff error: %v", err)
	}

	if !strings.Contains(got, "--- a/requirements.txt") {
		t.Errorf("missing old-file header in:\n%s", got)
	}
	if !strings.Contains(got, "+++ b/requirements.txt") {
		t.Errorf("missing new-file header in:\n%s", got)
	}
	if !strings.Contains(got, "+django") {
		t.Errorf("missing added line in:\n%s", got)
	}
	// Full-context diff shows unchanged lines too.
	if !strings.Contains(got, " flask") {
		t.Errorf("missing context line in:\n%s", got)
	}
}

func TestRenderDiffNoChanges(t *testing.T) {
	SetColor(false)
	t.Cleanup(func() { SetColor(true) })

	content := "flask\n"
	got, err := renderDiff("requirements.txt", content, content)
	if err != nil {
		t.Fatalf("renderDiff error: %v", err)
	}
	if strings.Contains(got, "@@") {
		t.Errorf("diff of identical content has hunks:\n%s", got)
	}
}
