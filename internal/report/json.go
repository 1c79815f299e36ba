package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/czwords/internal/model"
)

// JSONWriter outputs a run or a comparison as one JSON document followed by
// a newline. Paths and words are written verbatim, without HTML escaping.
type JSONWriter struct {
	baseWriter

	// pretty indents nested values by two spaces.
	pretty bool
}

// NewJSONWriter creates a JSONWriter. With pretty set the document is
// indented, otherwise it is written on a single line.
func NewJSONWriter(output io.Writer, pretty bool) *JSONWriter {
	return &JSONWriter{
		baseWriter: newBaseWriter(output),
		pretty:     pretty,
	}
}

// Write outputs the report in JSON format.
func (w *JSONWriter) Write(result *model.RunResult) (int, error) {
	return w.encode(result)
}

// WriteComparison outputs the comparison in JSON format.
func (w *JSONWriter) WriteComparison(c *model.Comparison) (int, error) {
	return w.encode(c)
}

// encode renders v into a buffer and writes it in one call.
func (w *JSONWriter) encode(v any) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}
