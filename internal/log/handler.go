package log

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

// pathKeys are the attribute keys whose values are file system paths.
var pathKeys = map[string]bool{
	"path": true,
	"dir":  true,
}

// RelativePathHandler wraps an slog.Handler and rewrites path attributes
// that lie inside root to root-relative, slash-separated form. Paths
// outside root, and all other attributes, pass through unchanged.
type RelativePathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// root is the absolute scan root. Empty disables rewriting.
	root string
}

// NewRelativePathHandler creates a RelativePathHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used.
func NewRelativePathHandler(handler slog.Handler, root string) *RelativePathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RelativePathHandler{handler: handler, root: root}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RelativePathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it to the underlying handler.
func (h *RelativePathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})

	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *RelativePathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &RelativePathHandler{handler: h.handler.WithAttrs(rewritten), root: h.root}
}

// WithGroup returns a new handler with the given group name.
func (h *RelativePathHandler) WithGroup(name string) slog.Handler {
	return &RelativePathHandler{handler: h.handler.WithGroup(name), root: h.root}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *RelativePathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewritten[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	}

	if h.root == "" || a.Value.Kind() != slog.KindString || !pathKeys[strings.ToLower(a.Key)] {
		return a
	}

	return slog.String(a.Key, h.relative(a.Value.String()))
}

// relative returns p relative to the root, or p itself when it lies outside.
func (h *RelativePathHandler) relative(p string) string {
	if !filepath.IsAbs(p) {
		return p
	}
	rel, err := filepath.Rel(h.root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	if rel == "." {
		return "."
	}
	return filepath.ToSlash(rel)
}

// level returns the minimum level for the verbosity setting.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text logger writing to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//   - root: The scan root used to shorten path attributes; may be empty
func NewLogger(w io.Writer, verbose bool, root string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}
	return slog.New(NewRelativePathHandler(slog.NewTextHandler(w, opts), root))
}

// NewJSONLogger creates a logger like NewLogger that outputs JSON.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool, root string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}
	return slog.New(NewRelativePathHandler(slog.NewJSONHandler(w, opts), root))
}
