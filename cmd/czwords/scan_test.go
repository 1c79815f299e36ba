package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/czwords/internal/config"
)

func TestRunScan(t *testing.T) {
	t.Parallel()

	newTree := func(t *testing.T) string {
		t.Helper()
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"a.cpp":       "// Příjemný den, soubor nenalezen\n",
			"sub/b.h":     "int pocet = 0; // to je program\n",
			"notes.md":    "soubor\n",
			"sub/empty.h": "int x;\n",
		})
		return root
	}

	t.Run("prints text report", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)

		stdout, stderr, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root)...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := strings.Join([]string{
			"--- a.cpp ---",
			"  den",
			"  prijemny",
			"  soubor",
			"",
			"--- " + filepath.Join("sub", "b.h") + " ---",
			"  pocet",
			"",
			"All unique Czech words (alphabetical):",
			"den",
			"pocet",
			"prijemny",
			"soubor",
		}, "\n") + "\n"
		if stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
		if stderr != "" {
			t.Errorf("expected empty stderr, got %q", stderr)
		}
	})

	t.Run("custom word list", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeTree(t, root, map[string]string{"a.txt": "Prijemny den"})
		wordsPath := filepath.Join(t.TempDir(), "words.txt")
		if err := os.WriteFile(wordsPath, []byte("prijemny\n"), 0600); err != nil {
			t.Fatalf("failed to write word list: %v", err)
		}

		args := append(isolatedArgs(t, ""),
			"--project-root", root, "--extensions", ".txt", "--words", wordsPath)
		stdout, _, err := executeCommand(t, args...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "--- a.txt ---\n  prijemny\n\nAll unique Czech words (alphabetical):\nprijemny\n"
		if stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("no recursion", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)

		stdout, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root, "--no-recursion")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(stdout, "b.h") || strings.Contains(stdout, "pocet") {
			t.Errorf("expected subdirectory to be skipped, got %q", stdout)
		}
		if !strings.Contains(stdout, "--- a.cpp ---") {
			t.Errorf("expected a.cpp in report, got %q", stdout)
		}
	})

	t.Run("name filter matching nothing", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)

		stdout, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root, "--name-filter", "*.xyz")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "All unique Czech words (alphabetical):\n" {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("name filter star crosses directories", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"sub/deep/x.cpp": "soubor\n",
			"sub/y.cpp":      "soubor\n",
			"z.cpp":          "soubor\n",
		})

		stdout, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root, "--name-filter", "sub/*")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := strings.Join([]string{
			"--- " + filepath.Join("sub", "deep", "x.cpp") + " ---",
			"  soubor",
			"",
			"--- " + filepath.Join("sub", "y.cpp") + " ---",
			"  soubor",
			"",
			"All unique Czech words (alphabetical):",
			"soubor",
		}, "\n") + "\n"
		if stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("multi value extensions", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)

		stdout, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root, "--extensions", ".md", ".h")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "--- notes.md ---") {
			t.Errorf("expected notes.md in report, got %q", stdout)
		}
		if strings.Contains(stdout, "a.cpp") {
			t.Errorf("expected a.cpp to be skipped, got %q", stdout)
		}
	})

	t.Run("exclude directory", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)

		stdout, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root, "--exclude", "sub")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(stdout, "b.h") {
			t.Errorf("expected sub to be excluded, got %q", stdout)
		}
	})

	t.Run("missing project root", func(t *testing.T) {
		t.Parallel()
		root := filepath.Join(t.TempDir(), "missing")

		stdout, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root)...)
		if err == nil {
			t.Fatal("expected error for missing root")
		}
		want := "Project root '" + root + "' is not a directory."
		if err.Error() != want {
			t.Errorf("error = %q, want %q", err.Error(), want)
		}
		var userErr *userError
		if !errors.As(err, &userErr) {
			t.Errorf("expected *userError, got %T", err)
		}
		if stdout != "" {
			t.Errorf("expected no report, got %q", stdout)
		}
	})

	t.Run("project root is a file", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)

		_, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", filepath.Join(root, "a.cpp"))...)
		if err == nil || !strings.HasSuffix(err.Error(), "is not a directory.") {
			t.Errorf("expected not a directory error, got %v", err)
		}
	})

	t.Run("writes output file", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)
		outPath := filepath.Join(t.TempDir(), "words.txt")

		stdout, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root, "-o", outPath)...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != "" {
			t.Errorf("expected empty stdout, got %q", stdout)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if !strings.HasPrefix(string(data), "--- a.cpp ---\n") {
			t.Errorf("unexpected report: %q", data)
		}
		if strings.HasSuffix(string(data), "\n") {
			t.Error("expected no trailing newline in output file")
		}
	})

	t.Run("unwritable output file", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)
		outPath := filepath.Join(t.TempDir(), "missing", "words.txt")

		_, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root, "--output", outPath)...)
		if err == nil {
			t.Fatal("expected error for unwritable output")
		}
		prefix := "Unable to write output file '" + outPath + "': "
		if !strings.HasPrefix(err.Error(), prefix) {
			t.Errorf("error = %q, want prefix %q", err.Error(), prefix)
		}
	})

	t.Run("json log format", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)

		stdout, stderr, err := executeCommand(t, append(isolatedArgs(t, ""),
			"--project-root", root, "--log-format", "json", "--verbose")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(stdout, "--- a.cpp ---") {
			t.Errorf("unexpected report: %q", stdout)
		}

		var record map[string]any
		first, _, _ := strings.Cut(stderr, "\n")
		if err := json.Unmarshal([]byte(first), &record); err != nil {
			t.Fatalf("expected JSON log record, got %q: %v", first, err)
		}
		if record["msg"] != "starting scan" || record["dir"] != "." {
			t.Errorf("unexpected record %v", record)
		}
	})

	t.Run("json report", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)

		stdout, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root, "--json")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got struct {
			Words []string `json:"words"`
		}
		if err := json.Unmarshal([]byte(stdout), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if strings.Join(got.Words, ",") != "den,pocet,prijemny,soubor" {
			t.Errorf("words = %v", got.Words)
		}
	})

	t.Run("markdown report", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)

		stdout, _, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root, "--markdown")...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "# Czech Words Report") {
			t.Errorf("expected markdown heading, got %q", stdout)
		}
	})

	t.Run("config file values", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)
		configPath := filepath.Join(t.TempDir(), "czwords.yaml")
		content := "projectRoot: " + root + "\nextensions:\n  - .md\nvocabulary:\n  language: Cestina\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		stdout, _, err := executeCommand(t, "--config", configPath, "--history-dir", t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "--- notes.md ---\n  soubor\n\nAll unique Cestina words (alphabetical):\nsoubor\n"
		if stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("flags override config file", func(t *testing.T) {
		t.Parallel()
		root := newTree(t)
		configPath := filepath.Join(t.TempDir(), "czwords.yaml")
		if err := os.WriteFile(configPath, []byte("extensions:\n  - .md\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		stdout, _, err := executeCommand(t, "--config", configPath, "--history-dir", t.TempDir(),
			"--project-root", root, "--extensions", ".h")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(stdout, "notes.md") || !strings.Contains(stdout, "b.h") {
			t.Errorf("expected flag extensions to win, got %q", stdout)
		}
	})
}

func TestRunScanConfigErrors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "conflicting formats",
			args:    []string{"--json", "--markdown"},
			wantErr: config.ErrConflictingReportFormats,
		},
		{
			name:    "empty extensions",
			args:    []string{"--extensions", ","},
			wantErr: config.ErrNoExtensions,
		},
		{
			name:    "invalid glob",
			args:    []string{"--exclude", "[a"},
			wantErr: config.ErrInvalidPattern,
		},
		{
			name:    "unknown encoding",
			args:    []string{"--encoding", "klingon"},
			wantErr: config.ErrUnknownEncoding,
		},
		{
			name:    "unknown log format",
			args:    []string{"--log-format", "xml"},
			wantErr: config.ErrUnknownLogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := append(isolatedArgs(t, ""), "--project-root", root)
			_, _, err := executeCommand(t, append(args, tt.args...)...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()
		_, _, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"),
			"--history-dir", t.TempDir(), "--project-root", root)
		if err == nil || !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("expected config not found error, got %v", err)
		}
	})
}

func TestRunScanReadFailure(t *testing.T) {
	t.Parallel()

	if os.Getuid() == 0 {
		t.Skip("root can read any file")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.cpp": "soubor\n",
		"b.cpp": "okno\n",
	})
	if err := os.Chmod(filepath.Join(root, "b.cpp"), 0); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}

	stdout, stderr, err := executeCommand(t, append(isolatedArgs(t, ""), "--project-root", root)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stderr, "Failed to read b.cpp: ") {
		t.Errorf("stderr = %q", stderr)
	}
	if stdout != "--- a.cpp ---\n  soubor\n\nAll unique Czech words (alphabetical):\nsoubor\n" {
		t.Errorf("stdout = %q", stdout)
	}
}
