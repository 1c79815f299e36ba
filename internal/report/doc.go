// Package report renders scan results and run comparisons.
//
// This package contains writers for different output formats:
//   - TextWriter: the plain text report, stable byte for byte
//   - MarkdownWriter: a Markdown document for sharing
//   - JSONWriter: structured JSON output for tool integration
//
// Writers implement the Writer interface, so the CLI picks one from the
// configuration and uses it without knowing the format. Rendering is kept
// apart from the destination: WriteFile stores a rendered report on disk
// in a single write.
package report
