package vocab

import (
	"slices"

	"github.com/nao1215/czwords/internal/words"
)

// Set is an immutable set of normalized words.
// The zero value is an empty set.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from raw entries. Every entry is normalized with
// words.Normalize; entries that normalize to "" are dropped.
func NewSet(entries ...string) Set {
	m := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if word := words.Normalize(entry); word != "" {
			m[word] = struct{}{}
		}
	}
	return Set{words: m}
}

// Contains reports whether the normalized word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words.
func (s Set) Len() int {
	return len(s.words)
}

// Words returns the words in alphabetical order.
func (s Set) Words() []string {
	result := make([]string, 0, len(s.words))
	for word := range s.words {
		result = append(result, word)
	}
	slices.Sort(result)
	return result
}

// Without returns a new set holding the words of s that are not in other.
func (s Set) Without(other Set) Set {
	m := make(map[string]struct{}, len(s.words))
	for word := range s.words {
		if !other.Contains(word) {
			m[word] = struct{}{}
		}
	}
	return Set{words: m}
}
