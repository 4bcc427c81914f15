package collation

import "testing"

func TestAcquireByteOrderLocales(t *testing.T) {
	for _, locale := range []string{"C", "POSIX", "C.UTF-8", "posix"} {
		t.Run(locale, func(t *testing.T) {
			cmp, release := Acquire(locale, nil)
			defer release()

			if cmp("apple", "banana") >= 0 {
				t.Error("apple should sort before banana")
			}
			// Byte order puts uppercase before lowercase.
			if cmp("Zebra", "apple") >= 0 {
				t.Error("byte order should put Zebra before apple")
			}
		})
	}
}

func TestAcquireNamedLocale(t *testing.T) {
	cmp, release := Acquire("en_US.UTF-8", nil)
	defer release()

	if cmp("apple", "banana") >= 0 {
		t.Error("apple should sort before banana")
	}
	if cmp("apple", "apple") != 0 {
		t.Error("equal strings should compare equal")
	}
	// English collation orders case-insensitively at the primary level.
	if cmp("Apple", "banana") >= 0 {
		t.Error("Apple should sort before banana under en_US")
	}
}

func TestAcquireUnknownLocaleFallsBack(t *testing.T) {
	cmp, release := Acquire("!!garbage!!", nil)
	defer release()

	// Fallback is deterministic byte order, never a failure.
	if cmp("a", "b") >= 0 {
		t.Error("fallback comparator should be byte order")
	}
	if cmp("B", "a") >= 0 {
		t.Error("fallback comparator should put B before a")
	}
}

func TestAcquireSequential(t *testing.T) {
	// Acquire after release must not deadlock and must hand out a working
	// comparator each time.
	for range 3 {
		cmp, release := Acquire("C", nil)
		if cmp("x", "y") >= 0 {
			t.Error("x should sort before y")
		}
		release()
	}
}

func TestSystemLocale(t *testing.T) {
	locale := SystemLocale()
	if locale == "" {
		t.Fatal("SystemLocale returned empty string")
	}
	if locale != SystemLocale() {
		t.Error("SystemLocale is not stable within a process")
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"en_US.UTF-8", false},
		{"en_GB", false},
		{"de_DE.UTF-8@euro", false},
		{"fr_FR.ISO8859-1", false},
		{"not a locale", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := parseLocale(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseLocale(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
