package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/czwords/internal/config"
	"github.com/nao1215/czwords/internal/database"
	czlog "github.com/nao1215/czwords/internal/log"
	"github.com/nao1215/czwords/internal/model"
	"github.com/nao1215/czwords/internal/pathutil"
	"github.com/nao1215/czwords/internal/pipeline"
	"github.com/nao1215/czwords/internal/report"
	"github.com/nao1215/czwords/internal/scanner"
	"github.com/nao1215/czwords/internal/source"
	"github.com/nao1215/czwords/internal/vocab"
	"github.com/nao1215/czwords/internal/words"
	"github.com/spf13/cobra"
)

// addScanFlags registers the scan flags on the root command.
func addScanFlags(cmd *cobra.Command) {
	// Selection flags
	cmd.Flags().String("project-root", config.DefaultProjectRoot,
		"Directory to scan")
	cmd.Flags().StringArray("extensions", config.DefaultExtensions,
		"File name suffixes to scan (space or comma separated)")
	cmd.Flags().StringArray("name-filter", nil,
		"Glob patterns a file's relative path or name must match")
	cmd.Flags().Bool("no-recursion", false,
		"Do not descend into subdirectories")
	cmd.Flags().StringArray("exclude", nil,
		"Glob patterns of directories and files to skip")
	cmd.Flags().Bool("exclude-vendor", false,
		"Skip vendored third-party directories (vendor/, node_modules/, ...)")
	cmd.Flags().Bool("respect-gitignore", false,
		"Skip paths ignored by .gitignore files")

	// Reading flags
	cmd.Flags().String("encoding", config.DefaultEncoding,
		"Text encoding of the source files (e.g. windows-1250)")
	cmd.Flags().Bool("strip-markup", false,
		"Only check text and comments of HTML/XML files")
	cmd.Flags().Bool("split-camel-case", false,
		"Split camelCase identifiers into words")

	// Vocabulary flags
	cmd.Flags().String("words", "",
		"Word list replacing the built-in Czech vocabulary")
	cmd.Flags().String("other-words", "",
		"Word list replacing the built-in English vocabulary")
	cmd.Flags().Bool("keep-shared-words", false,
		"Keep words that are also English words")
	cmd.Flags().String("language", config.DefaultLanguageName,
		"Vocabulary language name shown in the report")

	// Output flags
	cmd.Flags().StringP("output", "o", "",
		"Write the report to this file instead of stdout")
	cmd.Flags().BoolP("json", "j", false,
		"Output report in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output report in Markdown format")
	cmd.Flags().Bool("save-history", false,
		"Record the run in the history database (see 'czwords compare')")
}

// runScanCmd executes the scan.
func runScanCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runScan(ctx, cmd, cfg)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// loadConfigFile applies the configuration file, if any, to cfg.
// A missing file is only an error when the user named it explicitly.
func loadConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath == "" {
		if explicitConfigPath {
			return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
		}
		return nil
	}

	file, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	file.Apply(cfg)

	return nil
}

// buildConfig creates a Config from the configuration file and the flags.
// Flags override file values only when they were set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	if err := loadConfigFile(cmd, cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	var err error

	stringFlags := map[string]*string{
		"project-root": &cfg.ProjectRoot,
		"encoding":     &cfg.Encoding,
		"words":        &cfg.WordsFile,
		"other-words":  &cfg.OtherWordsFile,
		"language":     &cfg.LanguageName,
		"output":       &cfg.OutputFile,
		"log-format":   &cfg.LogFormat,
	}
	for name, dst := range stringFlags {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return nil, err
		}
	}

	listFlags := map[string]*[]string{
		"extensions":  &cfg.Extensions,
		"name-filter": &cfg.NameFilters,
		"exclude":     &cfg.ExcludePatterns,
	}
	for name, dst := range listFlags {
		if !flags.Changed(name) {
			continue
		}
		values, err := flags.GetStringArray(name)
		if err != nil {
			return nil, err
		}
		*dst = splitList(values)
	}

	boolFlags := map[string]*bool{
		"no-recursion":      &cfg.NoRecursion,
		"exclude-vendor":    &cfg.ExcludeVendor,
		"respect-gitignore": &cfg.RespectGitignore,
		"strip-markup":      &cfg.StripMarkup,
		"split-camel-case":  &cfg.SplitCamelCase,
		"keep-shared-words": &cfg.KeepSharedWords,
		"json":              &cfg.JSONReport,
		"markdown":          &cfg.MarkdownReport,
		"save-history":      &cfg.SaveHistory,
	}
	for name, dst := range boolFlags {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetBool(name); err != nil {
			return nil, err
		}
	}

	cfg.DBDir, err = flags.GetString("history-dir")
	if err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// reportFormat returns the output format selected by cfg.
func reportFormat(cfg *config.Config) report.Format {
	switch {
	case cfg.JSONReport:
		return report.FormatJSON
	case cfg.MarkdownReport:
		return report.FormatMarkdown
	default:
		return report.FormatText
	}
}

// newLogger creates the logger selected by cfg.LogFormat.
func newLogger(w io.Writer, cfg *config.Config, root string) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return czlog.NewJSONLogger(w, cfg.Verbose, root)
	}
	return czlog.NewLogger(w, cfg.Verbose, root)
}

// runScan executes the scan and writes the report.
func runScan(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	root, err := scanner.ResolveRoot(cfg.ProjectRoot)
	if err != nil {
		shown := cfg.ProjectRoot
		if abs, absErr := filepath.Abs(cfg.ProjectRoot); absErr == nil {
			shown = abs
		}
		return newRootError(shown, err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg, root)
	slog.SetDefault(logger)

	logger.Debug("starting scan",
		"dir", root,
		"extensions", cfg.Extensions,
		"recursive", !cfg.NoRecursion,
	)

	excludeOpts := pathutil.ExcludeOptions{
		Patterns: cfg.ExcludePatterns,
		Vendor:   cfg.ExcludeVendor,
	}
	if cfg.RespectGitignore {
		excludeOpts.GitignoreRoot = root
	}
	excluder, err := pathutil.NewExcluder(excludeOpts)
	if err != nil {
		return err
	}

	known, _, err := vocab.Load(vocab.Options{
		KnownPath:  cfg.WordsFile,
		OtherPath:  cfg.OtherWordsFile,
		KeepShared: cfg.KeepSharedWords,
	})
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}
	logger.Debug("vocabulary loaded", "words", known.Len())

	reader, err := source.NewReader(source.Options{
		Encoding:    cfg.Encoding,
		StripMarkup: cfg.StripMarkup,
	})
	if err != nil {
		return err
	}

	files, err := scanner.Files(scanner.Options{
		Root:         root,
		Extensions:   cfg.Extensions,
		NamePatterns: cfg.NameFilters,
		Recursive:    !cfg.NoRecursion,
		Excluder:     excluder,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	var extractOpts []words.Option
	if cfg.SplitCamelCase {
		extractOpts = append(extractOpts, words.WithCamelCaseSplit())
	}

	aggregator := pipeline.New(root, reader, words.NewExtractor(known, extractOpts...),
		pipeline.WithLogger(logger),
		pipeline.WithErrorOutput(cmd.ErrOrStderr()),
		pipeline.WithLanguage(cfg.LanguageName),
	)

	result, err := aggregator.Run(ctx, files)
	if err != nil {
		return fmt.Errorf("scan interrupted: %w", err)
	}

	logger.Debug("scan completed",
		"files", result.FilesScanned,
		"failed", result.FilesFailed,
		"words", len(result.Words),
	)

	if cfg.SaveHistory {
		saveRun(ctx, cfg, result, logger)
	}

	return outputReport(cmd, cfg, result)
}

// outputReport renders the report and writes it to the configured destination.
// The report is rendered in full before anything is written.
func outputReport(cmd *cobra.Command, cfg *config.Config, result *model.RunResult) error {
	format := reportFormat(cfg)

	var buf bytes.Buffer
	if _, err := report.New(format, &buf).Write(result); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if cfg.OutputFile != "" {
		if err := report.WriteFile(cfg.OutputFile, buf.Bytes()); err != nil {
			var writeErr *report.WriteError
			if errors.As(err, &writeErr) {
				return newOutputError(writeErr)
			}
			return err
		}
		return nil
	}

	// The text report has no trailing newline of its own.
	if format == report.FormatText {
		buf.WriteByte('\n')
	}
	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

// saveRun records the run in the history database.
// Failures are logged and do not fail the scan.
func saveRun(ctx context.Context, cfg *config.Config, result *model.RunResult, logger *slog.Logger) {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		logger.Error("failed to open history database", "error", err)
		return
	}
	defer db.Close()

	digest := report.Digest([]byte(report.RenderText(result)))
	id, err := db.SaveRun(ctx, result, digest)
	if err != nil {
		logger.Error("failed to save run", "error", err)
		return
	}

	logger.Debug("run saved", "id", id, "digest", digest, "db", db.Path())
}
