package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/czwords/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. as a
// comment on a pull request.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(result *model.RunResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	language := result.Language
	if language == "" {
		language = DefaultLanguage
	}

	md.H1(language + " Words Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project Root", "`" + result.Root + "`"},
			{"Scan Date", result.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Files Scanned", strconv.Itoa(result.FilesScanned)},
			{"Files Unreadable", strconv.Itoa(result.FilesFailed)},
			{"Files With Words", strconv.Itoa(len(result.Files))},
			{"Unique Words", strconv.Itoa(len(result.Words))},
		},
	})
	md.PlainText("")

	if !result.HasMatches() {
		md.Tip("No " + language + " words found.")
		md.PlainText("")
		w.writeFooter(md)
		return len(md.String()), md.Build()
	}

	md.H2("Files")
	md.PlainText("")
	for _, f := range result.Files {
		md.H3("`" + f.RelPath + "`")
		md.PlainText("")
		md.BulletList(f.Words...)
		md.PlainText("")
	}

	index := result.WordFiles()
	rows := make([][]string, 0, len(result.Words))
	for _, word := range result.Words {
		files := make([]string, 0, len(index[word]))
		for _, rel := range index[word] {
			files = append(files, "`"+rel+"`")
		}
		rows = append(rows, []string{word, strings.Join(files, ", ")})
	}

	md.H2("All Words")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Word", "Files"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteComparison outputs the comparison in Markdown format.
func (w *MarkdownWriter) WriteComparison(c *model.Comparison) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Run Comparison")
	md.PlainText("")
	md.PlainText("Project root: `" + c.Root + "`")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Previous", "Current", "Change"},
		Rows: [][]string{
			{"Run", "#" + strconv.FormatInt(c.Previous.ID, 10), "#" + strconv.FormatInt(c.Current.ID, 10), "-"},
			{"Date", c.Previous.DateScanned.Format("2006-01-02 15:04"), c.Current.DateScanned.Format("2006-01-02 15:04"), "-"},
			{"Words", strconv.Itoa(c.Previous.WordCount), strconv.Itoa(c.Current.WordCount), formatDelta(c.Current.WordCount - c.Previous.WordCount)},
			{"Files", strconv.Itoa(c.Previous.FileCount), strconv.Itoa(c.Current.FileCount), formatDelta(c.Current.FileCount - c.Previous.FileCount)},
		},
	})
	md.PlainText("")

	if !c.HasChanges() {
		md.Note("No changes since the previous run.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	if len(c.NewWords) > 0 {
		md.H2("New Words (" + strconv.Itoa(len(c.NewWords)) + ")")
		md.PlainText("")
		md.BulletList(c.NewWords...)
		md.PlainText("")
	}

	if len(c.RemovedWords) > 0 {
		md.H2("Removed Words (" + strconv.Itoa(len(c.RemovedWords)) + ")")
		md.PlainText("")
		md.BulletList(c.RemovedWords...)
		md.PlainText("")
	}

	if len(c.ChangedFiles) > 0 {
		rows := make([][]string, 0, len(c.ChangedFiles))
		for _, f := range c.ChangedFiles {
			rows = append(rows, []string{"`" + f.RelPath + "`", joinWords(f.Added), joinWords(f.Removed)})
		}
		md.H2("Changed Files (" + strconv.Itoa(len(c.ChangedFiles)) + ")")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"File", "Added", "Removed"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if c.UnchangedCount > 0 {
		md.HorizontalRule()
		md.PlainText("")
		md.PlainTextf("*%d words unchanged*", c.UnchangedCount)
	}

	return len(md.String()), md.Build()
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by [czwords](https://github.com/nao1215/czwords)*")
}

func joinWords(words []string) string {
	if len(words) == 0 {
		return "-"
	}
	return strings.Join(words, ", ")
}
