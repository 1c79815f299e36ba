package pathutil

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchAny reports whether at least one pattern matches at least one of the
// candidate strings. Patterns use doublestar syntax ("*", "**", "?", "[...]",
// "{a,b}"). Malformed patterns never match; Config.Validate rejects them
// before a scan starts.
func MatchAny(patterns []string, candidates ...string) bool {
	for _, pattern := range patterns {
		for _, candidate := range candidates {
			if matched, err := doublestar.Match(pattern, candidate); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// flatSeparator stands in for "/" when a pattern is matched as one flat
// string. NUL never occurs in a file path.
const flatSeparator = "\x00"

// MatchNameFilter is MatchAny with shell-style wildcards as used by name
// filters: "*" and "?" also match "/", so "sub/*" selects every file below
// sub/ at any depth. Doublestar matches are accepted too, which keeps
// "a/**/b" matching "a/b".
func MatchNameFilter(patterns []string, candidates ...string) bool {
	if MatchAny(patterns, candidates...) {
		return true
	}
	for _, pattern := range patterns {
		flat := strings.ReplaceAll(pattern, "/", flatSeparator)
		for _, candidate := range candidates {
			matched, err := doublestar.Match(flat, strings.ReplaceAll(candidate, "/", flatSeparator))
			if err == nil && matched {
				return true
			}
		}
	}
	return false
}
