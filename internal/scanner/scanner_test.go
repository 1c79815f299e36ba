package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/nao1215/czwords/internal/pathutil"
)

// newTree creates the given files (relative slash paths) below a temp dir.
func newTree(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, rel := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(p, []byte("text"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}
	return root
}

// collect ranges over the scan and returns the relative paths.
func collect(t *testing.T, opts Options) []string {
	t.Helper()

	seq, err := Files(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rels []string
	for f := range seq {
		rels = append(rels, f.Rel)
	}
	return rels
}

// TestFiles_Order tests the deterministic traversal order.
func TestFiles_Order(t *testing.T) {
	t.Parallel()

	root := newTree(t,
		"b.cpp",
		"A.h",
		"a.cpp",
		"Zeta/z.cpp",
		"alpha/x.cpp",
		"alpha/beta/y.cpp",
		"readme.txt",
	)

	got := collect(t, Options{
		Root:       root,
		Extensions: []string{".cpp", ".h"},
		Recursive:  true,
	})
	want := []string{
		"a.cpp",
		"A.h",
		"b.cpp",
		"alpha/x.cpp",
		"alpha/beta/y.cpp",
		"Zeta/z.cpp",
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestFiles_FileFields tests the values carried by each File.
func TestFiles_FileFields(t *testing.T) {
	t.Parallel()

	root := newTree(t, "plugins/menu.cpp")

	seq, err := Files(Options{Root: root, Extensions: []string{".cpp"}, Recursive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []File
	for f := range seq {
		got = append(got, f)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 file, got %d", len(got))
	}

	abs, err := filepath.Abs(filepath.Join(root, "plugins", "menu.cpp"))
	if err != nil {
		t.Fatal(err)
	}
	want := File{Path: abs, Rel: "plugins/menu.cpp", Name: "menu.cpp"}
	if got[0] != want {
		t.Errorf("expected %+v, got %+v", want, got[0])
	}
}

// TestFiles_NoRecursion tests that subdirectories are not visited.
func TestFiles_NoRecursion(t *testing.T) {
	t.Parallel()

	root := newTree(t, "top.cpp", "sub/deep.cpp")

	got := collect(t, Options{Root: root, Extensions: []string{".cpp"}})
	want := []string{"top.cpp"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestFiles_VersionControlDirs tests that .git and .svn are never entered.
func TestFiles_VersionControlDirs(t *testing.T) {
	t.Parallel()

	root := newTree(t, ".git/hooks/x.cpp", ".svn/y.cpp", "src/z.cpp", ".hidden/w.cpp")

	got := collect(t, Options{Root: root, Extensions: []string{".cpp"}, Recursive: true})
	want := []string{".hidden/w.cpp", "src/z.cpp"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestFiles_Extensions tests the case-sensitive suffix filter.
func TestFiles_Extensions(t *testing.T) {
	t.Parallel()

	root := newTree(t, "a.cpp", "b.CPP", "c.rc2", "d.rc", "e.txt")

	got := collect(t, Options{Root: root, Extensions: []string{".cpp", ".rc"}, Recursive: true})
	want := []string{"a.cpp", "d.rc"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestFiles_NamePatterns tests the name filter against relative paths and names.
func TestFiles_NamePatterns(t *testing.T) {
	t.Parallel()

	root := newTree(t, "execute.cpp", "plugins/menu.cpp", "plugins/demo/dialog.cpp",
		"sub/y.cpp", "sub/deep/x.cpp")

	tests := []struct {
		name      string
		patterns  []string
		recursive bool
		want      []string
	}{
		{
			name:      "bare name pattern matches at any depth",
			patterns:  []string{"menu.*"},
			recursive: true,
			want:      []string{"plugins/menu.cpp"},
		},
		{
			name:      "relative path pattern",
			patterns:  []string{"plugins/**/*.cpp"},
			recursive: true,
			want:      []string{"plugins/menu.cpp", "plugins/demo/dialog.cpp"},
		},
		{
			name:      "single star crosses directories",
			patterns:  []string{"sub/*"},
			recursive: true,
			want:      []string{"sub/y.cpp", "sub/deep/x.cpp"},
		},
		{
			name:      "pattern matching nothing",
			patterns:  []string{"nothing*"},
			recursive: true,
			want:      nil,
		},
		{
			// At depth 0 the relative path equals the bare name, so a
			// pattern naming a subdirectory can never match.
			name:      "subdirectory pattern without recursion",
			patterns:  []string{"plugins/*.cpp"},
			recursive: false,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := collect(t, Options{
				Root:         root,
				Extensions:   []string{".cpp"},
				NamePatterns: tt.patterns,
				Recursive:    tt.recursive,
			})
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestFiles_Excluder tests pruning of excluded directories and files.
func TestFiles_Excluder(t *testing.T) {
	t.Parallel()

	root := newTree(t, "keep.cpp", "lang/cz.cpp", "lang/sub/more.cpp", "src/skip.cpp", "src/ok.cpp")

	excluder, err := pathutil.NewExcluder(pathutil.ExcludeOptions{
		Patterns: []string{"lang", "skip.cpp"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := collect(t, Options{
		Root:       root,
		Extensions: []string{".cpp"},
		Recursive:  true,
		Excluder:   excluder,
	})
	want := []string{"keep.cpp", "src/ok.cpp"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestFiles_Restartable tests that the sequence can be ranged more than once.
func TestFiles_Restartable(t *testing.T) {
	t.Parallel()

	root := newTree(t, "a.cpp", "b/c.cpp")

	seq, err := Files(Options{Root: root, Extensions: []string{".cpp"}, Recursive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var first, second []string
	for f := range seq {
		first = append(first, f.Rel)
	}
	for f := range seq {
		second = append(second, f.Rel)
	}
	if !slices.Equal(first, second) {
		t.Errorf("expected identical passes, got %v and %v", first, second)
	}

	for f := range seq {
		if f.Rel != "a.cpp" {
			t.Errorf("expected a.cpp first, got %s", f.Rel)
		}
		break
	}
}

// TestFiles_Symlinks tests that linked directories are not descended.
func TestFiles_Symlinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on Windows")
	}

	root := newTree(t, "real/a.cpp", "b.cpp")
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "linkdir")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "b.cpp"), filepath.Join(root, "c.cpp")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	got := collect(t, Options{Root: root, Extensions: []string{".cpp"}, Recursive: true})
	want := []string{"b.cpp", "c.cpp", "real/a.cpp"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestFiles_ConfigurationErrors tests the eager validation.
func TestFiles_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	root := newTree(t, "file.cpp")

	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "missing root",
			opts: Options{Root: filepath.Join(root, "missing"), Extensions: []string{".cpp"}},
		},
		{
			name: "root is a file",
			opts: Options{Root: filepath.Join(root, "file.cpp"), Extensions: []string{".cpp"}},
		},
		{
			name: "no extensions",
			opts: Options{Root: root},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seq, err := Files(tt.opts)
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
			if seq != nil {
				t.Error("expected nil sequence on error")
			}
		})
	}
}

// TestHasExtension tests the suffix predicate.
func TestHasExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		file       string
		extensions []string
		want       bool
	}{
		{name: "match", file: "a.cpp", extensions: []string{".h", ".cpp"}, want: true},
		{name: "case differs", file: "a.CPP", extensions: []string{".cpp"}, want: false},
		{name: "suffix of longer extension", file: "a.rc2", extensions: []string{".rc"}, want: false},
		{name: "empty extension ignored", file: "a.txt", extensions: []string{""}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HasExtension(tt.file, tt.extensions); got != tt.want {
				t.Errorf("HasExtension(%q, %v) = %v, want %v", tt.file, tt.extensions, got, tt.want)
			}
		})
	}
}
