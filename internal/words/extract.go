package words

import (
	"slices"
	"unicode"
)

// Lookup is the read-only view of a known-word set used during extraction.
// vocab.Set implements it.
type Lookup interface {
	Contains(word string) bool
}

// Option configures Extract.
type Option func(*extractOptions)

type extractOptions struct {
	splitCamelCase bool
}

// WithCamelCaseSplit splits tokens at lower-to-upper case transitions
// ("pocetSouboru" becomes "pocet" and "Souboru") before normalization.
func WithCamelCaseSplit() Option {
	return func(o *extractOptions) {
		o.splitCamelCase = true
	}
}

// Extract returns the sorted, duplicate-free list of normalized words of
// text that are members of known. Empty text gives an empty result.
func Extract(text string, known Lookup, opts ...Option) []string {
	var o extractOptions
	for _, opt := range opts {
		opt(&o)
	}

	found := make(map[string]struct{})
	for _, token := range WordPattern.FindAllString(text, -1) {
		parts := []string{token}
		if o.splitCamelCase {
			parts = SplitCamelCase(token)
		}
		for _, part := range parts {
			word := Normalize(part)
			if word == "" || !known.Contains(word) {
				continue
			}
			found[word] = struct{}{}
		}
	}

	result := make([]string, 0, len(found))
	for word := range found {
		result = append(result, word)
	}
	slices.Sort(result)
	return result
}

// Extractor binds options to Extract so callers can pass it around.
type Extractor struct {
	known Lookup
	opts  []Option
}

// NewExtractor creates an Extractor looking words up in known.
func NewExtractor(known Lookup, opts ...Option) *Extractor {
	return &Extractor{known: known, opts: opts}
}

// Extract returns the known words found in text.
func (e *Extractor) Extract(text string) []string {
	return Extract(text, e.known, e.opts...)
}

// SplitCamelCase splits a token before every upper-case letter that follows
// a lower-case letter. Runs of capitals stay together: "HTTPServer" is not
// split, "souborHTTP" gives "soubor" and "HTTP".
func SplitCamelCase(token string) []string {
	var parts []string
	start := 0
	prevLower := false
	for i, r := range token {
		if unicode.IsUpper(r) && prevLower {
			parts = append(parts, token[start:i])
			start = i
		}
		if unicode.IsLetter(r) {
			prevLower = unicode.IsLower(r)
		}
	}
	return append(parts, token[start:])
}
