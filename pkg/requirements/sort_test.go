package requirements

import (
	"slices"
	"testing"
)

func TestSortKey(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"requests==2.28.0", "requests"},
		{"requests[security]>=2.0", "requests"},
		{"requests  # comment", "requests"},
		{"Django~=4.2", "Django"},
		{"  flask  ", "flask"},
		{"./libs/mypackage", "./libs/mypackage"},
	}

	for _, tt := range tests {
		if got := SortKey(tt.line); got != tt.want {
			t.Errorf("SortKey(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSortSections(t *testing.T) {
	in := []string{
		"# web",
		"requests",
		"flask",
		"",
		"",
		"# data",
		"pandas",
		"numpy",
	}
	want := []string{
		"# web",
		"flask",
		"requests",
		"",
		"# data",
		"numpy",
		"pandas",
	}

	got := Sort(in, ModeSections, nil)
	if !slices.Equal(got, want) {
		t.Errorf("Sort sections = %q, want %q", got, want)
	}
}

func TestSortSectionsKeepsCommentPosition(t *testing.T) {
	in := []string{
		"zope",
		"# comments stay before the sorted entries of their section",
		"aiohttp",
	}
	want := []string{
		"# comments stay before the sorted entries of their section",
		"aiohttp",
		"zope",
	}

	got := Sort(in, ModeSections, nil)
	if !slices.Equal(got, want) {
		t.Errorf("Sort = %q, want %q", got, want)
	}
}

func TestSortLegacy(t *testing.T) {
	in := []string{
		"# dropped comment",
		"requests",
		"",
		"./libs/local-pkg",
		"flask",
		"-e ../shared/other",
		"git+https://github.com/user/repo.git#egg=tool",
		"django",
	}
	want := []string{
		"django",
		"flask",
		"requests",
		"./libs/local-pkg",
		"-e ../shared/other",
		"git+https://github.com/user/repo.git#egg=tool",
	}

	got := Sort(in, ModeLegacy, nil)
	if !slices.Equal(got, want) {
		t.Errorf("Sort legacy = %q, want %q", got, want)
	}
}

func TestSortIdempotent(t *testing.T) {
	in := []string{
		"# section one",
		"zope",
		"flask",
		"",
		"requests",
		"./local/pkg",
	}

	for _, mode := range []Mode{ModeSections, ModeLegacy} {
		once := Sort(in, mode, nil)
		twice := Sort(once, mode, nil)
		if !slices.Equal(once, twice) {
			t.Errorf("mode %v not idempotent: %q then %q", mode, once, twice)
		}
	}
}

func TestSortDoesNotModifyInput(t *testing.T) {
	in := []string{"b", "a"}
	_ = Sort(in, ModeSections, nil)
	if !slices.Equal(in, []string{"b", "a"}) {
		t.Errorf("input slice was modified: %q", in)
	}
}

func TestSortStableForEqualKeys(t *testing.T) {
	in := []string{
		"requests[security]  # first",
		"requests==2.28.0  # second",
	}

	got := Sort(in, ModeSections, nil)
	if !slices.Equal(got, in) {
		t.Errorf("equal keys reordered: %q", got)
	}
}

func TestSortCustomComparator(t *testing.T) {
	reverse := func(a, b string) int {
		switch {
		case a < b:
			return 1
		case a > b:
			return -1
		}
		return 0
	}

	got := Sort([]string{"alpha", "beta"}, ModeSections, reverse)
	want := []string{"beta", "alpha"}
	if !slices.Equal(got, want) {
		t.Errorf("Sort with reverse comparator = %q, want %q", got, want)
	}
}
