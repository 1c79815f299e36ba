package report

import (
	"io"

	"github.com/nao1215/czwords/internal/model"
)

// Writer defines the interface for report output.
// Implementations write scan results in various formats.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.RunResult) (int, error)

	// WriteComparison outputs the difference between two recorded runs.
	WriteComparison(c *model.Comparison) (int, error)
}

// Format identifies a report format.
type Format string

// Supported report formats.
const (
	// FormatText is the plain text report.
	FormatText Format = "text"
	// FormatMarkdown is the Markdown report.
	FormatMarkdown Format = "markdown"
	// FormatJSON is the JSON report.
	FormatJSON Format = "json"
)

// New returns the Writer for format, writing to output.
// Unknown formats fall back to text.
func New(format Format, output io.Writer) Writer {
	switch format {
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	case FormatJSON:
		return NewJSONWriter(output, true)
	default:
		return NewTextWriter(output)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
