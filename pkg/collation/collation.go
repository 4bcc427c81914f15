// Package collation provides locale-aware string comparison for sorting
// requirement entries.
//
// Comparators are built on golang.org/x/text/collate, so no process-global
// locale state is mutated. A collator still buffers internally and is not
// safe for concurrent use, so [Acquire] hands out comparators under an
// exclusive lock: acquire, compare, release, never re-entrantly.
//
// Locales that cannot be bound degrade to deterministic byte-order
// comparison with a one-time warning rather than failing the operation.
package collation

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator is a three-way string comparison bound to a collation locale:
// negative when a < b, zero when equal, positive when a > b.
type Comparator func(a, b string) int

// DefaultLocale is used by editing commands when the user requests none.
const DefaultLocale = "en_US.UTF-8"

// candidateLocales is probed in order during system-locale detection when
// no environment variable names a usable locale.
var candidateLocales = []string{"C.UTF-8", "en_US.UTF-8", "en_GB.UTF-8", "C", "POSIX"}

// collationEnvVars are consulted in precedence order, mirroring POSIX
// LC_COLLATE resolution.
var collationEnvVars = []string{"LC_ALL", "LC_COLLATE", "LANG"}

var (
	// mu serializes comparator usage. Collators buffer internal state, so
	// two concurrent holders would race.
	mu sync.Mutex

	detectOnce     sync.Once
	detectedLocale string

	warnOnce sync.Once
)

// Acquire binds a comparator to the requested locale and returns it with a
// release function. The release function must be called on every exit path;
// until then the comparator holds an exclusive lock and no other caller can
// acquire one.
//
// An empty locale triggers system detection (see [SystemLocale]), cached for
// the process lifetime. A locale that cannot be bound yields a byte-order
// comparator and logs a single warning per process; Acquire never fails.
func Acquire(locale string, logger *log.Logger) (Comparator, func()) {
	mu.Lock()
	release := func() { mu.Unlock() }

	if locale == "" {
		locale = SystemLocale()
	}
	return comparatorFor(locale, logger), release
}

// SystemLocale returns the collation locale detected from the environment,
// falling back to a fixed candidate list. Detection runs once per process;
// the answer cannot change while the process lives.
func SystemLocale() string {
	detectOnce.Do(func() {
		for _, env := range collationEnvVars {
			if v := os.Getenv(env); v != "" && bindable(v) {
				detectedLocale = v
				return
			}
		}
		for _, candidate := range candidateLocales {
			if bindable(candidate) {
				detectedLocale = candidate
				return
			}
		}
		detectedLocale = "C"
	})
	return detectedLocale
}

func comparatorFor(locale string, logger *log.Logger) Comparator {
	if byteOrderLocale(locale) {
		return strings.Compare
	}
	tag, err := parseLocale(locale)
	if err != nil {
		warnOnce.Do(func() {
			if logger != nil {
				logger.Warnf("locale %q unavailable, falling back to byte-order sorting: %v", locale, err)
			}
		})
		return strings.Compare
	}
	return collate.New(tag).CompareString
}

// bindable reports whether the locale name can back a comparator.
func bindable(locale string) bool {
	if byteOrderLocale(locale) {
		return true
	}
	_, err := parseLocale(locale)
	return err == nil
}

// byteOrderLocale reports whether the locale's collation is plain
// byte/codepoint order. These need no collator at all.
func byteOrderLocale(locale string) bool {
	switch strings.ToUpper(strings.SplitN(locale, ".", 2)[0]) {
	case "C", "POSIX":
		return true
	}
	return false
}

// parseLocale converts a POSIX locale name like "en_US.UTF-8" or
// "de_DE.UTF-8@euro" to a BCP 47 language tag.
func parseLocale(locale string) (language.Tag, error) {
	name := strings.SplitN(locale, ".", 2)[0]
	name = strings.SplitN(name, "@", 2)[0]
	name = strings.ReplaceAll(name, "_", "-")
	return language.Parse(name)
}
