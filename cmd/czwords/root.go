package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/nao1215/czwords/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for czwords.
// Running it without a subcommand scans the project tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "czwords",
		Short: "Find Czech words left in a source tree",
		Long: `czwords walks a source tree, splits the text of every matching file into
words and reports the words that belong to a Czech vocabulary, file by file,
followed by the list of all words found.

Words are compared without diacritics and case, so "Příjemný" and "PRIJEMNY"
are the same word. Words that are also common English words ("to", "program")
are ignored unless --keep-shared-words is given.

Examples:
  # Scan ./src with the default C/C++ extensions
  czwords

  # Scan a specific tree, only headers and sources below plugins/
  czwords --project-root ../salamander/src --name-filter "plugins/**"

  # Several values may follow one flag
  czwords --extensions .cpp .h --exclude lang vendor

  # Write the report to a file and record the run
  czwords --output words.txt --save-history`,
		Args:          cobra.NoArgs,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScanCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to configuration file (default: .czwords in current or home directory)")
	cmd.PersistentFlags().String("log-format", config.LogFormatText,
		"Log record format: text or json")
	cmd.PersistentFlags().String("history-dir", config.XDGDataDir(),
		"Directory holding the run history database")
	_ = cmd.PersistentFlags().MarkHidden("history-dir") //nolint:errcheck // flag is defined above

	addScanFlags(cmd)

	// Add subcommands
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	cmd := NewRootCmd()
	cmd.SetArgs(expandMultiValueFlags(os.Args[1:], commandNames(cmd)))

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(getVersion()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithErrorHandler(printError),
	); err != nil {
		os.Exit(1)
	}
}

// printError writes err as a single plain line.
func printError(w io.Writer, _ fang.Styles, err error) {
	fmt.Fprintln(w, err.Error())
}
