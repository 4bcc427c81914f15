package requirements

import (
	"errors"
	"fmt"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// ErrInvalidSpecifier is returned when a version specifier fails PEP 440
// grammar validation after normalization.
var ErrInvalidSpecifier = errors.New("invalid version specifier")

// comparisonOps are the PEP 440 comparison operators a specifier may start
// with. A specifier starting with none of them gets an implicit "==".
var comparisonOps = []string{"==", "!=", ">=", "<=", ">", "<", "~="}

// NormalizeSpecifier validates a raw version token and returns it with an
// explicit operator. Bare versions are pinned: "4.2.0" becomes "==4.2.0",
// while ">=1.0" passes through unchanged. Multi-clause specifiers like
// ">=4.0,<5.0" are supported.
//
// The returned error wraps [ErrInvalidSpecifier] and embeds the grammar's
// own message so the user sees why the specifier was rejected.
func NormalizeSpecifier(spec string) (string, error) {
	s := strings.TrimSpace(spec)
	if !hasComparisonOp(s) {
		s = "==" + s
	}

	if _, err := pep440.NewSpecifiers(s); err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidSpecifier, s, err)
	}
	return s, nil
}

func hasComparisonOp(s string) bool {
	for _, op := range comparisonOps {
		if strings.HasPrefix(s, op) {
			return true
		}
	}
	return false
}
