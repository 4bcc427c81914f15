package requirements

import "testing"

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Django", "django"},
		{"my_package", "my-package"},
		{"My_Mixed_Name", "my-mixed-name"},
		{"  requests  ", "requests"},
		{"already-canonical", "already-canonical"},
	}

	for _, tt := range tests {
		if got := CanonicalName(tt.in); got != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		target string
		line   string
		want   bool
	}{
		{"exact", "requests", "requests", true},
		{"exact with pin", "requests", "requests==2.28.0", true},
		{"case insensitive", "django", "Django==4.2.0", true},
		{"separator equivalence", "my-package", "my_package>=1.0", true},
		{"separator other direction", "my_package", "my-package", true},
		{"extras transparent", "requests", "requests[security]>=2.28.0", true},
		{"different package", "requests", "requests-toolbelt", false},
		{"pinned target never matches other pin", "example==1.3.0", "example==1.2.3", false},
		{"prefix is not a match", "request", "requests", false},
		{"comment never matches", "requests", "# requests", false},
		{"blank never matches", "requests", "", false},
		{"inline comment ignored", "requests", "requests  # keep this", true},

		{"path substring", "mypackage", "./dist/mypackage_1.2.3.tar.gz", true},
		{"path segment only", "dist", "./dist/mypackage.tar.gz", false},
		{"path no match", "otherpkg", "./dist/mypackage.tar.gz", false},

		{"url egg", "mypackage", "git+https://example.com/r.git#egg=mypackage", true},
		{"url egg different name", "mypackage", "git+https://github.com/user/other.git#egg=other", false},
		{"url egg case", "MyPackage", "git+https://example.com/r.git#egg=mypackage", true},
		{"url direct reference", "mypackage", "mypackage @ https://example.com/m.tar.gz", true},
		{"url github repo", "myrepo", "git+https://github.com/user/myrepo.git@v1.0", true},
		{"url no name never matches", "archive", "https://example.com/some/archive.tar.gz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.target, tt.line); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.target, tt.line, got, tt.want)
			}
		})
	}
}
