package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nao1215/czwords/internal/config"
	"github.com/nao1215/czwords/internal/database"
	"github.com/nao1215/czwords/internal/model"
	"github.com/nao1215/czwords/internal/report"
	"github.com/spf13/cobra"
)

// NewCompareCmd creates the compare command.
// This command compares runs stored in the history database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare recorded runs",
		Long: `Compare displays how the words found in a project tree changed between runs.

This command reads runs recorded with 'czwords --save-history' and shows:
- Words that appeared since the previous run
- Words that disappeared
- Files that gained or lost words

The comparison requires at least two recorded runs for the project root.

Examples:
  # Compare the latest two runs over ./src
  czwords compare

  # List the recorded runs over a tree
  czwords compare --list --root ../salamander/src

  # Compare the latest run with a specific run
  czwords compare --with-run-id 3

  # List every recorded project root
  czwords compare --list-roots`,
		Args: cobra.NoArgs,
		RunE: runCompareCmd,
	}

	cmd.Flags().StringP("root", "r", config.DefaultProjectRoot,
		"Project root whose runs are compared")

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List recorded runs for the project root")
	cmd.Flags().BoolP("list-roots", "L", false,
		"List all project roots in the history")

	// Comparison target flags
	cmd.Flags().Int64P("with-run-id", "i", 0,
		"Compare with a specific run by ID (use --list to see available IDs)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, _ []string) error {
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	if jsonOutput && markdownOutput {
		return config.ErrConflictingReportFormats
	}

	rootFlag, err := cmd.Flags().GetString("root")
	if err != nil {
		return err
	}
	root, err := filepath.Abs(rootFlag)
	if err != nil {
		return fmt.Errorf("invalid project root: %w", err)
	}

	dbDir, err := cmd.Flags().GetString("history-dir")
	if err != nil {
		return err
	}

	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	listRoots, err := cmd.Flags().GetBool("list-roots")
	if err != nil {
		return err
	}
	if listRoots {
		return listRecordedRoots(ctx, out, db)
	}

	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listRunHistory(ctx, out, db, root)
	}

	withRunID, err := cmd.Flags().GetInt64("with-run-id")
	if err != nil {
		return err
	}

	format := report.FormatText
	switch {
	case jsonOutput:
		format = report.FormatJSON
	case markdownOutput:
		format = report.FormatMarkdown
	}

	return runComparison(ctx, out, db, root, withRunID, format)
}

// listRecordedRoots lists all project roots that have recorded runs.
func listRecordedRoots(ctx context.Context, out io.Writer, db *database.HistoryDB) error {
	roots, err := db.ListRoots(ctx)
	if err != nil {
		return fmt.Errorf("failed to list project roots: %w", err)
	}

	if len(roots) == 0 {
		fmt.Fprintln(out, "No recorded runs found in the history.")
		fmt.Fprintln(out, "\nUse 'czwords --save-history' to record a run.")
		return nil
	}

	fmt.Fprintf(out, "Recorded project roots (%d):\n\n", len(roots))
	for _, root := range roots {
		fmt.Fprintf(out, "  • %s\n", root)
	}
	fmt.Fprintln(out, "\nUse 'czwords compare --list --root <path>' to see the runs of a root.")

	return nil
}

// listRunHistory lists all recorded runs for a project root.
func listRunHistory(ctx context.Context, out io.Writer, db *database.HistoryDB, root string) error {
	runs, err := db.GetRunHistory(ctx, root)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintf(out, "No recorded runs found for %s\n", root)
		fmt.Fprintln(out, "\nUse 'czwords --save-history' to record a run.")
		return nil
	}

	fmt.Fprintf(out, "Run history for %s (%d runs):\n", root, len(runs))
	fmt.Fprintf(out, "Database: %s\n\n", db.Path())
	fmt.Fprintf(out, "  %-6s  %-20s  %-6s  %-6s  %s\n", "ID", "Date", "Words", "Files", "Digest")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 60))

	for _, meta := range runs {
		fmt.Fprintf(out, "  %-6d  %-20s  %-6d  %-6d  %s\n",
			meta.ID,
			meta.Timestamp.Local().Format("2006-01-02 15:04:05"),
			meta.WordCount,
			meta.FileCount,
			shortDigest(meta.Digest),
		)
	}

	fmt.Fprintln(out, "\nUse 'czwords compare' to compare the latest two runs.")
	fmt.Fprintln(out, "Use 'czwords compare --with-run-id <id>' to compare with a specific run.")

	return nil
}

// shortDigest shortens a report digest for display.
func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}

// runComparison compares the latest run with the previous or a chosen run.
func runComparison(ctx context.Context, out io.Writer, db *database.HistoryDB, root string, withRunID int64, format report.Format) error {
	runs, err := db.GetLatestRuns(ctx, root, 2)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(runs) == 0 {
		return fmt.Errorf("no recorded runs found for %s", root)
	}

	if len(runs) < 2 && withRunID == 0 {
		return fmt.Errorf("at least 2 runs are required for comparison (found %d)", len(runs))
	}

	current := runs[0]
	var previous *model.RunResult

	if withRunID > 0 {
		previous, err = db.GetRunByID(ctx, withRunID)
		if errors.Is(err, database.ErrRunNotFound) {
			return fmt.Errorf("run with ID %d not found", withRunID)
		}
		if err != nil {
			return fmt.Errorf("failed to get run with ID %d: %w", withRunID, err)
		}
		if previous.Root != root {
			return fmt.Errorf("run ID %d belongs to %s, not %s", withRunID, previous.Root, root)
		}
	} else {
		previous = runs[1]
	}

	if _, err := report.New(format, out).WriteComparison(model.Compare(previous, current)); err != nil {
		return fmt.Errorf("failed to write comparison: %w", err)
	}
	return nil
}
