package words

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// WordPattern matches one word: a maximal run of letters and combining marks.
// It is shared with the vocabulary loader so both sides agree on what a word is.
var WordPattern = regexp.MustCompile(`[\p{L}\p{M}]+`)

// Normalize maps a token to its lookup form: diacritics removed, remaining
// letters transliterated to ASCII, lowercased. It is deterministic and
// safe for concurrent use.
func Normalize(token string) string {
	if isASCII(token) {
		return strings.ToLower(token)
	}

	stripped, _, err := transform.String(newAccentStripper(), token)
	if err != nil {
		stripped = token
	}

	ascii := strings.TrimSpace(unidecode.Unidecode(stripped))
	return cases.Lower(language.Und).String(ascii)
}

// newAccentStripper decomposes, drops non-spacing marks and recomposes.
// Transformers keep state, so every call gets a fresh chain.
func newAccentStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
