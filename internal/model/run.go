package model

import (
	"slices"
	"time"

	"github.com/nao1215/czwords/internal/pathutil"
)

// FileWords holds the known words found in one file.
type FileWords struct {
	// Path is the absolute path of the file.
	Path string `json:"path"`

	// RelPath is the path relative to the scan root, with forward slashes.
	RelPath string `json:"rel_path"`

	// Words are the distinct normalized words, in alphabetical order.
	Words []string `json:"words"`
}

// RunResult is the outcome of one scan.
//
// Files only lists files with at least one known word, ordered by
// pathutil.Less on RelPath. Words is the alphabetical union of all
// per-file words. Call Finalize once every file has been added.
type RunResult struct {
	// ID is the history record ID. It is zero for runs that were not saved.
	ID int64 `json:"id,omitempty"`

	// Root is the absolute path of the scanned directory.
	Root string `json:"root"`

	// Language is the name of the vocabulary language, e.g. "Czech".
	Language string `json:"language"`

	// DateScanned is when the scan started.
	DateScanned time.Time `json:"date_scanned"`

	// FilesScanned counts the files that were read successfully.
	FilesScanned int `json:"files_scanned"`

	// FilesFailed counts the files that could not be read.
	FilesFailed int `json:"files_failed"`

	// Files are the files containing known words.
	Files []FileWords `json:"files"`

	// Words is the union of all words found.
	Words []string `json:"words"`

	union map[string]struct{}
}

// NewRunResult creates an empty result for a scan of root.
func NewRunResult(root, language string, scanned time.Time) *RunResult {
	return &RunResult{
		Root:        root,
		Language:    language,
		DateScanned: scanned,
		Files:       []FileWords{},
		Words:       []string{},
		union:       make(map[string]struct{}),
	}
}

// Add records the words found in a file. Files without words are ignored.
func (r *RunResult) Add(fw FileWords) {
	if len(fw.Words) == 0 {
		return
	}
	if r.union == nil {
		r.union = make(map[string]struct{})
	}

	r.Files = append(r.Files, fw)
	for _, word := range fw.Words {
		r.union[word] = struct{}{}
	}
}

// Finalize sorts the files and computes the global word list.
func (r *RunResult) Finalize() {
	slices.SortStableFunc(r.Files, func(a, b FileWords) int {
		return comparePaths(a.RelPath, b.RelPath)
	})

	words := make([]string, 0, len(r.union))
	for word := range r.union {
		words = append(words, word)
	}
	slices.Sort(words)
	r.Words = words
}

// HasMatches reports whether any known word was found.
func (r *RunResult) HasMatches() bool {
	return len(r.Files) > 0
}

// WordFiles maps every word to the relative paths of the files containing it.
func (r *RunResult) WordFiles() map[string][]string {
	index := make(map[string][]string)
	for _, fw := range r.Files {
		for _, word := range fw.Words {
			index[word] = append(index[word], fw.RelPath)
		}
	}
	return index
}

// comparePaths adapts pathutil.Less to the slices.SortFunc signature.
func comparePaths(a, b string) int {
	switch {
	case pathutil.Less(a, b):
		return -1
	case pathutil.Less(b, a):
		return 1
	default:
		return 0
	}
}
