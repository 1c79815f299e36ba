package model

import (
	"slices"
	"time"
)

// RunSummary describes one side of a Comparison.
type RunSummary struct {
	// ID is the history record ID.
	ID int64 `json:"id"`

	// DateScanned is when the run was performed.
	DateScanned time.Time `json:"date_scanned"`

	// WordCount is the number of distinct words found.
	WordCount int `json:"word_count"`

	// FileCount is the number of files containing words.
	FileCount int `json:"file_count"`
}

// FileChange lists the words a file gained or lost between two runs.
type FileChange struct {
	// RelPath is the root-relative path of the file.
	RelPath string `json:"rel_path"`

	// Added are words present only in the current run.
	Added []string `json:"added,omitempty"`

	// Removed are words present only in the previous run.
	Removed []string `json:"removed,omitempty"`
}

// Comparison is the difference between two runs over the same root.
type Comparison struct {
	// Root is the scanned directory.
	Root string `json:"root"`

	// Previous describes the older run.
	Previous RunSummary `json:"previous"`

	// Current describes the newer run.
	Current RunSummary `json:"current"`

	// NewWords appear in the current run only.
	NewWords []string `json:"new_words"`

	// RemovedWords appear in the previous run only.
	RemovedWords []string `json:"removed_words"`

	// UnchangedCount is the number of words found by both runs.
	UnchangedCount int `json:"unchanged_count"`

	// ChangedFiles are the files whose word set differs, ordered by path.
	ChangedFiles []FileChange `json:"changed_files"`
}

// Summarize returns the RunSummary of r.
func (r *RunResult) Summarize() RunSummary {
	return RunSummary{
		ID:          r.ID,
		DateScanned: r.DateScanned,
		WordCount:   len(r.Words),
		FileCount:   len(r.Files),
	}
}

// Compare computes the difference between previous and current.
func Compare(previous, current *RunResult) *Comparison {
	c := &Comparison{
		Root:         current.Root,
		Previous:     previous.Summarize(),
		Current:      current.Summarize(),
		NewWords:     []string{},
		RemovedWords: []string{},
		ChangedFiles: []FileChange{},
	}

	c.NewWords, c.RemovedWords, c.UnchangedCount = diff(previous.Words, current.Words)

	before := filesByPath(previous)
	after := filesByPath(current)

	paths := make([]string, 0, len(before)+len(after))
	for p := range before {
		paths = append(paths, p)
	}
	for p := range after {
		if _, ok := before[p]; !ok {
			paths = append(paths, p)
		}
	}
	slices.SortFunc(paths, comparePaths)

	for _, p := range paths {
		added, removed, _ := diff(before[p], after[p])
		if len(added) == 0 && len(removed) == 0 {
			continue
		}
		c.ChangedFiles = append(c.ChangedFiles, FileChange{
			RelPath: p,
			Added:   added,
			Removed: removed,
		})
	}

	return c
}

// HasChanges reports whether the two runs differ.
func (c *Comparison) HasChanges() bool {
	return len(c.NewWords) > 0 || len(c.RemovedWords) > 0 || len(c.ChangedFiles) > 0
}

func filesByPath(r *RunResult) map[string][]string {
	m := make(map[string][]string, len(r.Files))
	for _, fw := range r.Files {
		m[fw.RelPath] = fw.Words
	}
	return m
}

// diff returns the sorted words only in after, only in before, and the
// number of words in both.
func diff(before, after []string) (added, removed []string, common int) {
	inBefore := make(map[string]bool, len(before))
	for _, w := range before {
		inBefore[w] = true
	}
	inAfter := make(map[string]bool, len(after))
	for _, w := range after {
		inAfter[w] = true
	}

	added = []string{}
	removed = []string{}
	for w := range inAfter {
		if inBefore[w] {
			common++
		} else {
			added = append(added, w)
		}
	}
	for w := range inBefore {
		if !inAfter[w] {
			removed = append(removed, w)
		}
	}
	slices.Sort(added)
	slices.Sort(removed)
	return added, removed, common
}
