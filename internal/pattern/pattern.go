// Package pattern holds the low-level capture-group extraction used by the
// template engine and the page-group detector.
package pattern

import (
	"regexp"
	"strings"
)

// Extract searches text for the first match of pattern and returns the
// trimmed content of its first capture group. A blank pattern, a pattern
// that fails to compile, or a pattern with no match all yield ok=false.
// Patterns with more than one capture group are tolerated; only the first
// group is returned.
func Extract(pat, text string) (string, bool) {
	if strings.TrimSpace(pat) == "" {
		return "", false
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil || len(m) < 2 {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// CaptureGroups returns the number of capture groups in pattern, or -1 if
// the pattern does not compile.
func CaptureGroups(pat string) int {
	re, err := regexp.Compile(pat)
	if err != nil {
		return -1
	}
	return re.NumSubexp()
}
