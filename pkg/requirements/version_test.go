package requirements

import (
	"errors"
	"testing"
)

func TestNormalizeSpecifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare version pinned", "4.2.0", "==4.2.0"},
		{"explicit pin kept", "==2.28.0", "==2.28.0"},
		{"minimum kept", ">=1.0", ">=1.0"},
		{"compatible kept", "~=1.4.2", "~=1.4.2"},
		{"exclusion kept", "!=1.5", "!=1.5"},
		{"multi clause", ">=4.0,<5.0", ">=4.0,<5.0"},
		{"pre release", "1.0.0rc1", "==1.0.0rc1"},
		{"local version", "1.0+local.1", "==1.0+local.1"},
		{"whitespace trimmed", "  2.0  ", "==2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSpecifier(tt.in)
			if err != nil {
				t.Fatalf("NormalizeSpecifier(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeSpecifier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSpecifierInvalid(t *testing.T) {
	for _, in := range []string{"not.a.version", "not a version", "==", ">=x.y"} {
		t.Run(in, func(t *testing.T) {
			_, err := NormalizeSpecifier(in)
			if err == nil {
				t.Fatalf("NormalizeSpecifier(%q) succeeded, want error", in)
			}
			if !errors.Is(err, ErrInvalidSpecifier) {
				t.Errorf("error %v does not wrap ErrInvalidSpecifier", err)
			}
		})
	}
}
