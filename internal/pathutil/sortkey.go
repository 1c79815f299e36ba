package pathutil

import (
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/text/cases"
)

// SortKey returns the key used to order root-relative paths in reports:
// the case-folded path segments.
func SortKey(rel string) []string {
	folder := cases.Fold()
	segments := strings.Split(rel, "/")
	for i, segment := range segments {
		segments[i] = folder.String(segment)
	}
	return segments
}

// Less reports whether the root-relative path a sorts before b.
//
// Paths are compared segment by segment. Segments are compared
// case-insensitively with numeric awareness, so "file2.cpp" sorts before
// "file10.cpp". When one path is a segment prefix of the other, the
// shorter one sorts first. Remaining ties are broken by the raw strings.
func Less(a, b string) bool {
	ka, kb := SortKey(a), SortKey(b)

	for i := 0; i < len(ka) && i < len(kb); i++ {
		if ka[i] == kb[i] {
			continue
		}
		if natural.Less(ka[i], kb[i]) {
			return true
		}
		if natural.Less(kb[i], ka[i]) {
			return false
		}
		return ka[i] < kb[i]
	}

	if len(ka) != len(kb) {
		return len(ka) < len(kb)
	}
	return a < b
}
