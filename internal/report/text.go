package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nao1215/czwords/internal/model"
)

// DefaultLanguage is the language named in the footer when a result has none.
const DefaultLanguage = "Czech"

// TextWriter outputs the plain text report.
//
// Every file is introduced by a "--- <path> ---" header line, followed by
// its words indented by two spaces and a blank line. The report ends with
// the alphabetical list of all words. Lines are joined with "\n" and the
// output has no trailing newline, so the same tree always gives the same
// bytes.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in text format.
func (w *TextWriter) Write(result *model.RunResult) (int, error) {
	return io.WriteString(w.output, RenderText(result))
}

// RenderText renders result as the plain text report.
func RenderText(result *model.RunResult) string {
	var lines []string
	for _, f := range result.Files {
		lines = append(lines, "--- "+filepath.FromSlash(f.RelPath)+" ---")
		for _, word := range f.Words {
			lines = append(lines, "  "+word)
		}
		lines = append(lines, "")
	}

	language := result.Language
	if language == "" {
		language = DefaultLanguage
	}
	lines = append(lines, fmt.Sprintf("All unique %s words (alphabetical):", language))
	lines = append(lines, result.Words...)

	return strings.Join(lines, "\n")
}

// WriteComparison outputs the comparison in text format.
func (w *TextWriter) WriteComparison(c *model.Comparison) (int, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Run Comparison: %s\n", c.Root)
	b.WriteString(strings.Repeat("=", 60) + "\n")

	fmt.Fprintf(&b, "\nPrevious run: #%d  %s\n", c.Previous.ID, c.Previous.DateScanned.Format(timeLayout))
	fmt.Fprintf(&b, "Current run:  #%d  %s\n", c.Current.ID, c.Current.DateScanned.Format(timeLayout))

	b.WriteString("\nSummary:\n")
	fmt.Fprintf(&b, "  %-10s  %-10s  %-10s  %-10s\n", "", "Previous", "Current", "Change")
	b.WriteString("  " + strings.Repeat("-", 45) + "\n")
	fmt.Fprintf(&b, "  %-10s  %-10d  %-10d  %-10s\n", "Words",
		c.Previous.WordCount, c.Current.WordCount, formatDelta(c.Current.WordCount-c.Previous.WordCount))
	fmt.Fprintf(&b, "  %-10s  %-10d  %-10d  %-10s\n", "Files",
		c.Previous.FileCount, c.Current.FileCount, formatDelta(c.Current.FileCount-c.Previous.FileCount))

	if !c.HasChanges() {
		b.WriteString("\nNo changes.\n")
		return io.WriteString(w.output, b.String())
	}

	if len(c.NewWords) > 0 {
		fmt.Fprintf(&b, "\nNew Words (%d):\n", len(c.NewWords))
		for _, word := range c.NewWords {
			fmt.Fprintf(&b, "  [+] %s\n", word)
		}
	}

	if len(c.RemovedWords) > 0 {
		fmt.Fprintf(&b, "\nRemoved Words (%d):\n", len(c.RemovedWords))
		for _, word := range c.RemovedWords {
			fmt.Fprintf(&b, "  [-] %s\n", word)
		}
	}

	if len(c.ChangedFiles) > 0 {
		fmt.Fprintf(&b, "\nChanged Files (%d):\n", len(c.ChangedFiles))
		for _, f := range c.ChangedFiles {
			fmt.Fprintf(&b, "  %s\n", filepath.FromSlash(f.RelPath))
			for _, word := range f.Added {
				fmt.Fprintf(&b, "    [+] %s\n", word)
			}
			for _, word := range f.Removed {
				fmt.Fprintf(&b, "    [-] %s\n", word)
			}
		}
	}

	if c.UnchangedCount > 0 {
		fmt.Fprintf(&b, "\nUnchanged: %d words\n", c.UnchangedCount)
	}

	return io.WriteString(w.output, b.String())
}
