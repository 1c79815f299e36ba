package vocab

import (
	"bufio"
	"bytes"
	"compress/gzip"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

//go:embed data/cs.txt
var defaultKnown []byte

//go:embed data/en.txt
var defaultOther []byte

// Options configures Load.
type Options struct {
	// KnownPath replaces the embedded target-language list. Empty uses the default.
	KnownPath string

	// OtherPath replaces the embedded list of the codebase language.
	// Empty uses the default.
	OtherPath string

	// KeepShared keeps words that appear in both lists in the known set.
	KeepShared bool
}

// Load reads both word lists and returns the known set (target-language
// words, minus shared words unless KeepShared) and the other set.
func Load(opts Options) (known, other Set, err error) {
	all, err := loadList(opts.KnownPath, defaultKnown)
	if err != nil {
		return Set{}, Set{}, err
	}

	other, err = loadList(opts.OtherPath, defaultOther)
	if err != nil {
		return Set{}, Set{}, err
	}

	if opts.KeepShared {
		return all, other, nil
	}
	return all.Without(other), other, nil
}

// loadList reads the list at path, or the embedded fallback when path is empty.
func loadList(path string, fallback []byte) (Set, error) {
	if path == "" {
		return Parse(bytes.NewReader(fallback))
	}

	f, err := os.Open(path) //nolint:gosec // path is supplied by the user on purpose
	if err != nil {
		return Set{}, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return Set{}, fmt.Errorf("failed to decompress word list %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	set, err := Parse(r)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return set, nil
}

// Parse reads a newline separated word list.
//
// Blank lines and lines starting with '#' are ignored. A hunspell affix
// suffix ("slovo/ABC") is cut off, and a leading word-count line made of
// digits only is skipped, so .dic files can be used directly.
func Parse(r io.Reader) (Set, error) {
	var entries []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '/'); i >= 0 {
			line = line[:i]
		}
		if isNumber(line) {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return Set{}, err
	}

	set := NewSet(entries...)
	if set.Len() == 0 {
		return Set{}, ErrEmptyWordList
	}
	return set, nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
