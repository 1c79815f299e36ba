package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/czwords/internal/model"
	"github.com/nao1215/czwords/internal/scanner"
	"github.com/nao1215/czwords/internal/source"
)

// TextReader reads the decoded text of a file.
// *source.Reader implements it.
type TextReader interface {
	ReadText(path string) (string, error)
}

// WordExtractor returns the known words of a text, sorted and unique.
// *words.Extractor implements it.
type WordExtractor interface {
	Extract(text string) []string
}

// Aggregator builds a RunResult from scanned files.
type Aggregator struct {
	// root is the absolute scan root recorded in the result.
	root string

	reader    TextReader
	extractor WordExtractor

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// errOut receives the user-facing read failure messages.
	errOut io.Writer

	// language is the vocabulary name recorded in the result.
	language string

	// now returns the scan timestamp.
	now func() time.Time
}

// Option is a function that configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets a custom logger for the aggregator.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithErrorOutput sets the writer receiving "Failed to read" messages.
// If not set, os.Stderr is used.
func WithErrorOutput(w io.Writer) Option {
	return func(a *Aggregator) {
		a.errOut = w
	}
}

// WithLanguage sets the vocabulary language name recorded in the result.
func WithLanguage(name string) Option {
	return func(a *Aggregator) {
		a.language = name
	}
}

// WithClock sets the function providing the scan timestamp.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// New creates an Aggregator for a scan of root.
func New(root string, reader TextReader, extractor WordExtractor, opts ...Option) *Aggregator {
	a := &Aggregator{
		root:      root,
		reader:    reader,
		extractor: extractor,
		language:  "Czech",
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.errOut == nil {
		a.errOut = os.Stderr
	}

	return a
}

// Run consumes files and returns the finalized result.
//
// Read failures never abort the run. The only error returned is ctx.Err()
// when the context is cancelled between two files.
func (a *Aggregator) Run(ctx context.Context, files iter.Seq[scanner.File]) (*model.RunResult, error) {
	result := model.NewRunResult(a.root, a.language, a.now())

	for f := range files {
		select {
		case <-ctx.Done():
			a.logger.Warn("scan cancelled",
				"path", f.Path,
				"reason", ctx.Err(),
			)
			return nil, ctx.Err()
		default:
		}

		text, err := a.reader.ReadText(f.Path)
		if err != nil {
			a.reportReadFailure(f, err)
			result.FilesFailed++
			continue
		}
		result.FilesScanned++

		found := a.extractor.Extract(text)
		a.logger.Debug("file scanned",
			"path", f.Path,
			"words", len(found),
		)

		result.Add(model.FileWords{
			Path:    f.Path,
			RelPath: f.Rel,
			Words:   found,
		})
	}

	result.Finalize()
	return result, nil
}

// reportReadFailure writes the user-facing message for an unreadable file.
func (a *Aggregator) reportReadFailure(f scanner.File, err error) {
	cause := err
	var readErr *source.ReadError
	if errors.As(err, &readErr) {
		cause = readErr.Err
	}

	fmt.Fprintf(a.errOut, "Failed to read %s: %v\n", filepath.FromSlash(f.Rel), cause)
	a.logger.Debug("file skipped",
		"path", f.Path,
		"error", err,
	)
}
