package pathutil

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ExcludeOptions configures an Excluder.
type ExcludeOptions struct {
	// Patterns are glob patterns matched against the root-relative path and
	// against the last path element.
	Patterns []string

	// Vendor excludes paths that look like vendored third-party code
	// (vendor/, node_modules/, third_party/ and similar).
	Vendor bool

	// GitignoreRoot, when set, loads every .gitignore below this directory
	// and excludes the paths they ignore. It must be the scan root.
	GitignoreRoot string
}

// Excluder decides whether a root-relative path is excluded from a scan.
// A nil *Excluder excludes nothing.
type Excluder struct {
	patterns []string
	vendor   bool
	ignore   gitignore.Matcher
}

// NewExcluder creates an Excluder from the given options.
// It returns an error only when the .gitignore files cannot be read.
func NewExcluder(opts ExcludeOptions) (*Excluder, error) {
	e := &Excluder{
		patterns: opts.Patterns,
		vendor:   opts.Vendor,
	}

	if opts.GitignoreRoot != "" {
		patterns, err := gitignore.ReadPatterns(osfs.New(opts.GitignoreRoot), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read .gitignore files: %w", err)
		}
		e.ignore = gitignore.NewMatcher(patterns)
	}

	return e, nil
}

// ExcludedDir reports whether the directory at rel must be pruned.
// When it returns true, neither the directory's files nor its
// subdirectories are scanned. The scan root ("") is never excluded.
func (e *Excluder) ExcludedDir(rel string) bool {
	if e == nil || rel == "" {
		return false
	}
	return e.excluded(rel, true)
}

// ExcludedFile reports whether the file at rel must be skipped.
func (e *Excluder) ExcludedFile(rel string) bool {
	if e == nil || rel == "" {
		return false
	}
	return e.excluded(rel, false)
}

func (e *Excluder) excluded(rel string, isDir bool) bool {
	if MatchAny(e.patterns, rel, path.Base(rel)) {
		return true
	}

	if e.vendor {
		candidate := rel
		if isDir {
			candidate += "/"
		}
		if enry.IsVendor(candidate) {
			return true
		}
	}

	if e.ignore != nil && e.ignore.Match(strings.Split(rel, "/"), isDir) {
		return true
	}

	return false
}
