package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// markupExtensions are the suffixes treated as HTML/XML when markup
// stripping is enabled.
var markupExtensions = map[string]bool{
	".htm":   true,
	".html":  true,
	".xhtml": true,
	".xml":   true,
}

// Options configures a Reader.
type Options struct {
	// Encoding is a WHATWG encoding label such as "utf-8" or "windows-1250".
	// Empty means UTF-8.
	Encoding string

	// StripMarkup keeps only text and comments of HTML/XML files.
	StripMarkup bool
}

// Reader reads and decodes files.
type Reader struct {
	encoding    encoding.Encoding
	stripMarkup bool
}

// NewReader creates a Reader for the given options.
func NewReader(opts Options) (*Reader, error) {
	label := opts.Encoding
	if label == "" {
		label = "utf-8"
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}

	return &Reader{
		encoding:    enc,
		stripMarkup: opts.StripMarkup,
	}, nil
}

// ReadText returns the decoded text of the file at path.
// Failures are returned as *ReadError. The file is closed before returning.
func (r *Reader) ReadText(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // paths come from the scanner
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, r.encoding.NewDecoder()))
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	text := strings.ToValidUTF8(string(data), "\uFFFD")

	if r.stripMarkup && markupExtensions[strings.ToLower(filepath.Ext(path))] {
		return StripMarkup(text), nil
	}
	return text, nil
}
