package scanner

import (
	"cmp"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nao1215/czwords/internal/pathutil"
	"golang.org/x/text/cases"
)

// skippedDirs are directory names that are never entered.
var skippedDirs = map[string]bool{
	".git": true,
	".svn": true,
}

// File is a candidate file produced by the scanner.
type File struct {
	// Path is the absolute path of the file.
	Path string

	// Rel is the path relative to the scan root, with forward slashes.
	Rel string

	// Name is the bare file name.
	Name string
}

// Excluder decides which root-relative paths are left out of a scan.
// *pathutil.Excluder implements it.
type Excluder interface {
	// ExcludedDir reports whether a directory (and everything below it) is skipped.
	ExcludedDir(rel string) bool

	// ExcludedFile reports whether a single file is skipped.
	ExcludedFile(rel string) bool
}

// Options configures a scan.
type Options struct {
	// Root is the directory to scan. It must exist and be a directory.
	Root string

	// Extensions are the accepted file-name suffixes (case-sensitive).
	// At least one is required.
	Extensions []string

	// NamePatterns are optional glob patterns. When non-empty, a file is
	// yielded only if a pattern matches its relative path or its name.
	NamePatterns []string

	// Recursive enables descent into subdirectories.
	// When false only the files directly inside Root are yielded.
	Recursive bool

	// Excluder prunes directories and files. Nil excludes nothing.
	Excluder Excluder

	// Logger receives warnings about unreadable directories.
	// Nil means slog.Default().
	Logger *slog.Logger
}

// ResolveRoot returns the absolute, cleaned form of root after checking that
// it exists and is a directory. Failures wrap ErrConfiguration.
func ResolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: project root %q: %w", ErrConfiguration, root, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: project root '%s' is not a directory", ErrConfiguration, root)
	}

	return abs, nil
}

// Files returns the sequence of files selected by opts.
//
// The configuration is checked eagerly, so a bad root or an empty extension
// list is reported here and not while ranging. The returned sequence is
// finite, contains no duplicates and walks the tree again on every range.
func Files(opts Options) (iter.Seq[File], error) {
	if len(opts.Extensions) == 0 {
		return nil, fmt.Errorf("%w: at least one file extension is required", ErrConfiguration)
	}

	root, err := ResolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(yield func(File) bool) {
		w := &walker{
			opts:      opts,
			logger:    logger,
			foldNames: cases.Fold(),
		}
		w.walk(root, "", yield)
	}, nil
}

// walker holds the state of one pass over the tree.
type walker struct {
	opts      Options
	logger    *slog.Logger
	foldNames cases.Caser
}

// walk yields the eligible files of dir, then descends into its
// subdirectories. It returns false when the consumer stopped ranging.
func (w *walker) walk(dir, rel string, yield func(File) bool) bool {
	if w.opts.Excluder != nil && w.opts.Excluder.ExcludedDir(rel) {
		w.logger.Debug("directory excluded", "dir", dir)
		return true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Warn("skipping unreadable directory", "dir", dir, "error", err)
		return true
	}

	var files, dirs []string
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case entry.IsDir():
			if !skippedDirs[name] {
				dirs = append(dirs, name)
			}
		case entry.Type()&fs.ModeSymlink != 0:
			// Links to directories are not followed.
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.IsDir() {
				continue
			}
			files = append(files, name)
		case entry.Type().IsRegular():
			files = append(files, name)
		}
	}

	slices.SortFunc(files, w.compareNames)
	slices.SortFunc(dirs, w.compareNames)

	for _, name := range files {
		fileRel := path.Join(rel, name)
		if !w.eligible(name, fileRel) {
			continue
		}
		f := File{
			Path: filepath.Join(dir, name),
			Rel:  fileRel,
			Name: name,
		}
		if !yield(f) {
			return false
		}
	}

	if !w.opts.Recursive {
		return true
	}

	for _, name := range dirs {
		if !w.walk(filepath.Join(dir, name), path.Join(rel, name), yield) {
			return false
		}
	}
	return true
}

// eligible applies the extension, name-pattern and exclusion filters.
func (w *walker) eligible(name, rel string) bool {
	if !HasExtension(name, w.opts.Extensions) {
		return false
	}
	if len(w.opts.NamePatterns) > 0 && !pathutil.MatchNameFilter(w.opts.NamePatterns, rel, name) {
		return false
	}
	if w.opts.Excluder != nil && w.opts.Excluder.ExcludedFile(rel) {
		return false
	}
	return true
}

// compareNames orders names by their case-folded form, then by raw bytes.
func (w *walker) compareNames(a, b string) int {
	if c := cmp.Compare(w.foldNames.String(a), w.foldNames.String(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// HasExtension reports whether name ends with one of the suffixes.
// The comparison is case-sensitive.
func HasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
